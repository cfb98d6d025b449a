package models

import (
	"time"

	"pointtrail/internal/domain"
)

// User mirrors the platform account visible to this subsystem: identity,
// running point total, and profile fields needed by the viewer and widget.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Handle       string    `gorm:"uniqueIndex;size:64;not null" json:"handle"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:20;not null;index;default:'USER'" json:"role"` // USER | ADMIN
	Points       int       `gorm:"not null;default:0" json:"points"`
	Level        int       `gorm:"not null;default:0" json:"level"`
	AvatarURL    string    `gorm:"size:512" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == domain.RoleAdmin }
