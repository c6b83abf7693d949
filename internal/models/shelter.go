package models

import "time"

// Shelter is the profile paired one-to-one with a shelter account. It is
// created empty together with the account and filled in by the owner later.
type Shelter struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex"`
	Name         string    `json:"name"`
	WorkingHours string    `json:"working_hours"`
	Phone        string    `json:"phone" gorm:"size:20"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateShelterRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	WorkingHours string  `json:"working_hours" validate:"required"`
	Phone        string  `json:"phone" validate:"required,max=20"`
	Address      string  `json:"address" validate:"required,max=255"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
}
