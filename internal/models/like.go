package models

import "time"

// Like is a directed endorsement edge between two accounts.
// The (LikerID, LikedID) pair is unique; the constraint doubles as the
// mutual-exclusion gate for concurrent toggles on the same pair.
// Rows are hard-deleted on toggle-off, so no soft-delete column here.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LikerID   uint      `gorm:"not null;uniqueIndex:idx_liker_liked" json:"liker_id"`
	Liker     User      `gorm:"foreignKey:LikerID;constraint:OnDelete:CASCADE" json:"-"`
	LikedID   uint      `gorm:"not null;uniqueIndex:idx_liker_liked" json:"liked_id"`
	Liked     User      `gorm:"foreignKey:LikedID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
