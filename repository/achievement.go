package repository

import (
	"nextquest/models"

	"gorm.io/gorm/clause"
)

func (r *Repository) FindCertificate(certificateID uint) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.Where("id = ?", certificateID).First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *Repository) FindCertificateByEnrollment(enrollmentID uint) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.Where("enrollment_id = ?", enrollmentID).First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *Repository) CreateCertificate(cert *models.Certificate) error {
	return r.db.Create(cert).Error
}

// CertificatesForUser returns the user's certificates ordered by issue time
func (r *Repository) CertificatesForUser(userID uint) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := r.db.Where("user_id = ?", userID).Order("issued_at asc").Find(&certs).Error
	return certs, err
}

// CourseBadge returns the completion badge tied to a course, if one exists
func (r *Repository) CourseBadge(courseID uint) (*models.Badge, error) {
	var badge models.Badge
	if err := r.db.Where("course_id = ?", courseID).First(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *Repository) FindBadge(badgeID uint) (*models.Badge, error) {
	var badge models.Badge
	if err := r.db.Where("id = ?", badgeID).First(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

// GrantBadge gives the badge to the user once. Conflicts with the
// (user_id, badge_id) unique index are ignored, so a repeated grant is a
// no-op; the boolean reports whether a new row was written.
func (r *Repository) GrantBadge(userID, badgeID uint) (bool, error) {
	grant := models.UserBadge{UserID: userID, BadgeID: badgeID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoNothing: true,
	}).Create(&grant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// BadgesForUser returns the user's badge grants ordered by earn time
func (r *Repository) BadgesForUser(userID uint) ([]models.UserBadge, error) {
	var grants []models.UserBadge
	err := r.db.Where("user_id = ?", userID).Order("earned_at asc").Find(&grants).Error
	return grants, err
}
