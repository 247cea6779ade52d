package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge rarity tiers
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Certificate is issued once per completed enrollment
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"not null;uniqueIndex"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time `json:"issued_at" gorm:"autoCreateTime"`
	CompletionDate    time.Time `json:"completion_date"`
}

// Badge is static catalog data; CourseID links a completion badge to its course
type Badge struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	Rarity      string `json:"rarity" gorm:"default:'common'"`
	CourseID    *uint  `json:"course_id" gorm:"index"`
}

// UserBadge grants a badge to a user once
type UserBadge struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID  uint      `json:"badge_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	EarnedAt time.Time `json:"earned_at" gorm:"autoCreateTime"`
}
