package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply on a plaza topic.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TopicID   uint           `gorm:"not null;index" json:"topic_id"`
	Topic     Topic          `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
