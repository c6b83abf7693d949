package models

import "time"

// Notification is a durable per-user row created by the stage-transition
// fan-out when a watched post becomes available again.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	PostID      uint      `json:"post_id" gorm:"index"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
