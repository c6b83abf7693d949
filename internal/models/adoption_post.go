package models

import (
	"fmt"
	"time"
)

// Adoption stages of a post. Transitions between stages are unconstrained;
// the in_process -> active transition triggers notification fan-out.
const (
	StageActive    = "active"
	StageInProcess = "in_process"
	StageCompleted = "completed"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// AdoptionPost is a dog listed for adoption by a shelter.
type AdoptionPost struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender" gorm:"size:6"`
	Breed         string    `json:"breed"`
	Description   string    `json:"description"`
	Size          string    `json:"size" gorm:"size:2;default:M"`
	AdoptionStage string    `json:"adoption_stage" gorm:"size:10;default:active;index"`
	ShelterID     uint      `json:"shelter_id" gorm:"index"`
	Shelter       Shelter   `json:"shelter"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DetailURL is the deep link to the post's detail page, used in
// notification messages.
func (p *AdoptionPost) DetailURL() string {
	return fmt.Sprintf("/dogs/%d", p.ID)
}

type CreatePostRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Age           int    `json:"age" validate:"required,min=0"`
	Gender        string `json:"gender" validate:"required,oneof=male female"`
	Breed         string `json:"breed" validate:"required,max=255"`
	Description   string `json:"description,omitempty"`
	Size          string `json:"size" validate:"required,oneof=XS S M L XL"`
	AdoptionStage string `json:"adoption_stage,omitempty" validate:"omitempty,oneof=active in_process completed"`
	ImageURL      string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdatePostRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Age           int    `json:"age" validate:"required,min=0"`
	Gender        string `json:"gender" validate:"required,oneof=male female"`
	Breed         string `json:"breed" validate:"required,max=255"`
	Description   string `json:"description,omitempty"`
	Size          string `json:"size" validate:"required,oneof=XS S M L XL"`
	AdoptionStage string `json:"adoption_stage" validate:"required,oneof=active in_process completed"`
	ImageURL      string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// PostFilter carries the listing criteria. Zero values mean "no filter".
// All set criteria are combined with AND.
type PostFilter struct {
	ShelterID uint
	Size      string
	Breed     string // case-insensitive substring match
	Gender    string
	SortBy    string // one of "name", "age", "size"; empty for storage order
}
