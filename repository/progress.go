package repository

import (
	"time"

	"nextquest/models"

	"gorm.io/gorm/clause"
)

func (r *Repository) FindEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// FindEnrollmentByID looks up an enrollment owned by the given user
func (r *Repository) FindEnrollmentByID(enrollmentID, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.Where("id = ? AND user_id = ?", enrollmentID, userID).First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// EnsureEnrollment creates an active enrollment for the pair, or returns the
// existing one. The composite unique index on (user_id, course_id) backs the
// insert, so concurrent calls cannot produce duplicate rows.
func (r *Repository) EnsureEnrollment(userID, courseID uint) (*models.Enrollment, bool, error) {
	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   models.EnrollmentActive,
	}
	result := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Attrs(models.Enrollment{Status: models.EnrollmentActive, StartedAt: time.Now()}).
		FirstOrCreate(&enrollment)
	if result.Error != nil {
		return nil, false, result.Error
	}
	created := result.RowsAffected > 0
	return &enrollment, created, nil
}

// MarkEnrollmentCompleted transitions the enrollment to completed with a
// completion timestamp
func (r *Repository) MarkEnrollmentCompleted(enrollmentID uint) error {
	now := time.Now()
	return r.db.Model(&models.Enrollment{}).
		Where("id = ?", enrollmentID).
		Updates(map[string]interface{}{
			"status":       models.EnrollmentCompleted,
			"completed_at": &now,
		}).Error
}

func (r *Repository) FindProgress(enrollmentID, missionID uint) (*models.Progress, error) {
	var progress models.Progress
	if err := r.db.Where("enrollment_id = ? AND mission_id = ?", enrollmentID, missionID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompleteProgress upserts the progress row for the pair to completed. The
// conflict target is the (enrollment_id, mission_id) unique index, making the
// write a single atomic insert-or-update.
func (r *Repository) CompleteProgress(enrollmentID, missionID uint) error {
	now := time.Now()
	progress := models.Progress{
		EnrollmentID: enrollmentID,
		MissionID:    missionID,
		IsCompleted:  true,
		CompletedAt:  &now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "mission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_completed", "completed_at", "updated_at"}),
	}).Create(&progress).Error
}

// CompletedMissionIDs returns the mission ids the enrollment has completed
func (r *Repository) CompletedMissionIDs(enrollmentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Progress{}).
		Where("enrollment_id = ? AND is_completed = ?", enrollmentID, true).
		Pluck("mission_id", &ids).Error
	return ids, err
}

// CompletionCounts is the single authoritative completion predicate: it
// returns how many of the course's missions the enrollment has completed and
// how many exist in total. Both the mission-completion flow and certificate
// issuance decide through it.
func (r *Repository) CompletionCounts(enrollmentID, courseID uint) (completed, total int64, err error) {
	if err = r.db.Model(&models.Mission{}).
		Where("course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.Model(&models.Progress{}).
		Where("enrollment_id = ? AND is_completed = ?", enrollmentID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return completed, total, nil
}
