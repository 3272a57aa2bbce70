package models

import "time"

// Follow is a directed edge between two profiles: the follower sees the
// followed profile's posts in their feed. The composite unique index gives
// the edge set its set semantics.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
