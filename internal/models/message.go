package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a directed chat message between two accounts. Delivery is
// poll-based: clients fetch messages with ID greater than their last seen
// cursor. IDs are monotonically increasing, so ID ordering matches send order.
type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"not null;index" json:"sender_id"`
	Sender     User           `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	ReceiverID uint           `gorm:"not null;index" json:"receiver_id"`
	Receiver   User           `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
	Text       string         `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
