package models

import (
	"time"

	"gorm.io/gorm"
)

// Note is a personal study note. Visible and mutable only by its owner.
type Note struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Summary   string         `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
