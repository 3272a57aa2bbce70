package models

import "time"

// Profile is a user's social-facing identity, one-to-one with a User account.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:100"`
	FirstName string    `json:"first_name,omitempty" gorm:"size:100"`
	LastName  string    `json:"last_name,omitempty" gorm:"size:100"`
	Contacts  string    `json:"contacts,omitempty" gorm:"size:100"`
	Location  string    `json:"location,omitempty" gorm:"size:100"`
	Bio       string    `json:"bio,omitempty" gorm:"size:255"`
	Picture   string    `json:"picture,omitempty"` // media reference path
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRef is the compact profile representation used in follower listings
type ProfileRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ToRef converts a Profile to its compact representation
func (p *Profile) ToRef() ProfileRef {
	return ProfileRef{ID: p.ID, Username: p.Username}
}

// ProfileDetail is a profile together with both directions of its follow edges
type ProfileDetail struct {
	Profile
	Follows    []ProfileRef `json:"follows"`
	FollowedBy []ProfileRef `json:"followed_by"`
}

type CreateProfileRequest struct {
	Username  string `json:"username" validate:"required,min=2,max=100"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Contacts  string `json:"contacts,omitempty" validate:"omitempty,max=100"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=255"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Contacts  string `json:"contacts,omitempty" validate:"omitempty,max=100"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=255"`
}

type UploadPictureRequest struct {
	Picture string `json:"picture" validate:"required"`
}

// ProfileFilter holds the directory search filters; all are case-insensitive
// substring matches combined with AND.
type ProfileFilter struct {
	Username  string
	Location  string
	FirstName string
	LastName  string
}
