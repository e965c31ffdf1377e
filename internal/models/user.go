// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account on the Lingua platform.
// ReputationScore is a denormalized counter maintained by like transitions;
// it never goes below zero.
type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Username        string         `gorm:"unique;not null" json:"username"`
	Password        string         `gorm:"not null" json:"-"`
	ReputationScore int            `gorm:"not null;default:0" json:"reputation_score"`
	Avatar          string         `json:"avatar"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// PublicProfile is the safe projection of a user returned by auth endpoints.
// The credential hash is never echoed.
type PublicProfile struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	ReputationScore int    `json:"reputation_score"`
	Avatar          string `json:"avatar,omitempty"`
}

// Public returns the safe projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:              u.ID,
		Username:        u.Username,
		ReputationScore: u.ReputationScore,
		Avatar:          u.Avatar,
	}
}
