package models

import (
	"time"

	"gorm.io/gorm"
)

// User is auto-provisioned on first visit; rows are never deleted.
type User struct {
	gorm.Model
	DisplayName    string     `json:"display_name" gorm:"default:''"`
	Level          int        `json:"level" gorm:"default:1"`
	XP             int        `json:"xp" gorm:"default:0"`
	CurrentStreak  int        `json:"current_streak" gorm:"default:0"`
	LastActivityAt *time.Time `json:"last_activity_at"`
}
