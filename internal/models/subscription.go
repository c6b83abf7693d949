package models

import "time"

// Subscription marks a user as watching an adoption post. One subscription
// per (user, post) pair; rows are deleted on unsubscribe.
type Subscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
