package models

import "time"

// Post is the platform content item referenced by ledger entries. The recorder
// only reads it to resolve a post to its author and type; posting itself is the
// platform's concern.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Type      string    `gorm:"size:1;not null;index" json:"type"` // Q | A | C
	Title     string    `gorm:"size:255" json:"title"`
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes int       `gorm:"not null;default:0" json:"downvotes"`
	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string { return "posts" }
