package models

import (
	"time"

	"gorm.io/gorm"
)

// Topic is a public plaza post. BodyHTML is derived from sanitized user
// markup at creation time and is immutable afterwards.
type Topic struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Title     string         `gorm:"not null" json:"title"`
	BodyHTML  string         `gorm:"type:text;not null" json:"body_html"`
	ImageURL  string         `json:"image_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// CommentsCount is not persisted; computed at query time.
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
}
