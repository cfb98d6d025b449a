package models

import "time"

// PointHistory is one row in the per-user point ledger. Rows are append-only:
// the only deletions are the retention-cap eviction and admin cleanup/reset.
type PointHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	ActivityType string    `gorm:"size:50;not null;index" json:"activity_type"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	PostID       *uint     `gorm:"index" json:"post_id"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (PointHistory) TableName() string { return "point_history" }
