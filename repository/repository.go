package repository

import (
	"nextquest/models"

	"gorm.io/gorm"
)

// Repository is the typed query gateway over the relational store. It is
// constructed once in main and handed to the controllers; there is no
// package-level database handle.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB exposes the underlying handle for migrations and tests
func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *Repository) FindUser(userID uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) SaveUser(user *models.User) error {
	return r.db.Save(user).Error
}

// CourseWithCount pairs a course with its enrollment count for listings
type CourseWithCount struct {
	models.Course
	EnrollmentCount int64 `json:"enrollment_count"`
}

// PublicCourses returns public courses ordered by creation time, each with
// its enrollment count.
func (r *Repository) PublicCourses() ([]CourseWithCount, error) {
	var courses []models.Course
	if err := r.db.Where("is_public = ?", true).Order("created_at asc").Find(&courses).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		CourseID uint
		Total    int64
	}
	var counts []countRow
	if err := r.db.Model(&models.Enrollment{}).
		Select("course_id, COUNT(*) as total").
		Group("course_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byCourse := make(map[uint]int64, len(counts))
	for _, row := range counts {
		byCourse[row.CourseID] = row.Total
	}

	result := make([]CourseWithCount, len(courses))
	for i, course := range courses {
		result[i] = CourseWithCount{Course: course, EnrollmentCount: byCourse[course.ID]}
	}
	return result, nil
}

func (r *Repository) FindCourse(courseID uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *Repository) CountEnrollments(courseID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&total).Error
	return total, err
}

// MissionsForCourse returns a course's missions in order-index order
func (r *Repository) MissionsForCourse(courseID uint) ([]models.Mission, error) {
	var missions []models.Mission
	err := r.db.Where("course_id = ?", courseID).Order("order_index asc").Find(&missions).Error
	return missions, err
}

func (r *Repository) FindMission(missionID uint) (*models.Mission, error) {
	var mission models.Mission
	if err := r.db.Where("id = ?", missionID).First(&mission).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}
