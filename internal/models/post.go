package models

import "time"

// Post is a piece of content authored by a profile. ProfileID and CreatedAt
// are immutable after creation.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProfileID  uint      `json:"profile_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	Body       string    `json:"body" gorm:"size:255"`
	Tags       string    `json:"tags,omitempty" gorm:"size:100"`
	Attachment string    `json:"attachment,omitempty"` // media reference path
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Body       string `json:"body" validate:"required,min=1,max=255"`
	Tags       string `json:"tags,omitempty" validate:"omitempty,max=100"`
	Attachment string `json:"attachment,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Body       string `json:"body,omitempty" validate:"omitempty,min=1,max=255"`
	Tags       string `json:"tags,omitempty" validate:"omitempty,max=100"`
	Attachment string `json:"attachment,omitempty"`
}

// FeedPost is a post annotated with its author username and engagement counts
type FeedPost struct {
	ID         uint      `json:"id"`
	ProfileID  uint      `json:"profile_id"`
	PostedBy   string    `json:"posted_by"`
	CreatedAt  time.Time `json:"created_at"`
	Body       string    `json:"body"`
	Tags       string    `json:"tags,omitempty"`
	Attachment string    `json:"attachment,omitempty"`
	Likes      int64     `json:"likes"`
	Commented  int64     `json:"commented"`
}

// PostDetail is a single post with its full comment thread
type PostDetail struct {
	ID         uint          `json:"id"`
	ProfileID  uint          `json:"profile_id"`
	PostedBy   string        `json:"posted_by"`
	CreatedAt  time.Time     `json:"created_at"`
	Body       string        `json:"body"`
	Tags       string        `json:"tags,omitempty"`
	Attachment string        `json:"attachment,omitempty"`
	Likes      int64         `json:"likes"`
	Comments   []CommentView `json:"comments"`
}

// FeedFilter narrows a feed listing. Zero values mean "no filter"; LikedBy
// and FollowedBy hold the acting profile id for the liked/followed feeds.
type FeedFilter struct {
	Tag        string
	Author     string
	AuthorID   uint
	LikedBy    uint
	FollowedBy uint
	Offset     int
	Limit      int
}
