package models

import "time"

// Comment is attached to exactly one post; PostID never changes after creation.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProfileID uint      `json:"profile_id" gorm:"index"`
	PostID    uint      `json:"post_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body" gorm:"size:255"`
}

// CommentView is a comment annotated with its author's username
type CommentView struct {
	ID        uint      `json:"id"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
}

// CreateCommentRequest defines the request body for creating a new comment.
// The target post comes from the URL path only.
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=255"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=255"`
}
