package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)

// Enrollment tracks a user's registration in a course. The composite
// unique index closes the duplicate-row race the lookup alone would leave.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Status      string     `json:"status" gorm:"default:'active'"`
	StartedAt   time.Time  `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Progress is the completion record for one mission within one enrollment
type Progress struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_mission"`
	MissionID    uint       `json:"mission_id" gorm:"not null;uniqueIndex:idx_enrollment_mission"`
	IsCompleted  bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at"`
}
