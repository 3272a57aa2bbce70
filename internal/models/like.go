package models

import "time"

// Like marks a post as liked by a profile; a profile likes a post at most once.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProfileID uint      `json:"profile_id" gorm:"index;uniqueIndex:idx_profile_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_profile_post"`
	CreatedAt time.Time `json:"created_at"`
}
