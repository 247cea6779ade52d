package models

import "gorm.io/gorm"

// Course represents a learning program composed of ordered missions
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public" gorm:"default:false"`
	IsFree      bool   `json:"is_free" gorm:"default:true"`
	Category    string `json:"category"`
	CreatorID   *uint  `json:"creator_id" gorm:"index"`
}

// Mission is a single unit of content within a course, addressed by order index
type Mission struct {
	gorm.Model
	CourseID         uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_course_order"`
	OrderIndex       int    `json:"order_index" gorm:"uniqueIndex:idx_course_order"`
	Title            string `json:"title"`
	Content          string `json:"content" gorm:"type:text"`
	ResourceURL      string `json:"resource_url"`
	EstimatedMinutes int    `json:"estimated_minutes" gorm:"default:0"`
}
