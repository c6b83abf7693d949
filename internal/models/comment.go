package models

import "gorm.io/gorm"

// Comment represents a user comment on an adoption post
type Comment struct {
	gorm.Model
	PostID  uint   `json:"post_id" gorm:"index"`
	UserID  uint   `json:"user_id" gorm:"index"`
	Content string `json:"content"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
