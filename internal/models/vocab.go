package models

import (
	"time"

	"gorm.io/gorm"
)

// VocabEntry is a word saved to a user's personal vocabulary list.
// The combination of UserID and Word must be unique; a repeated add is
// answered with the existing row rather than an error.
type VocabEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_user_word" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Word      string         `gorm:"not null;uniqueIndex:idx_user_word" json:"word"`
	Phonetic  string         `json:"phonetic,omitempty"`
	Meaning   string         `gorm:"type:text;not null" json:"meaning"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
