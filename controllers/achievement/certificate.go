package achievementController

import (
	"errors"
	"log"
	"time"

	"nextquest/models"
	"nextquest/repository"
	"nextquest/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	Repo *repository.Repository
}

func New(repo *repository.Repository) *Controller {
	return &Controller{Repo: repo}
}

// ListCertificates returns the caller's certificates with course info,
// ordered by issue time
func (ctl *Controller) ListCertificates(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	certs, err := ctl.Repo.CertificatesForUser(userID)
	if err != nil {
		log.Printf("Failed to fetch certificates: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch certificates",
		})
	}

	result := make([]fiber.Map, len(certs))
	for i, cert := range certs {
		row := fiber.Map{
			"id":                cert.ID,
			"certificateNumber": cert.CertificateNumber,
			"issuedAt":          cert.IssuedAt,
			"completionDate":    cert.CompletionDate,
		}
		if course, err := ctl.Repo.FindCourse(cert.CourseID); err == nil {
			row["course"] = fiber.Map{
				"id":       course.ID,
				"title":    course.Title,
				"category": course.Category,
			}
		}
		result[i] = row
	}

	return c.JSON(result)
}

// CertificateDetail is a public read: anyone holding the id may view the
// certificate, so third parties can verify it.
func (ctl *Controller) CertificateDetail(c *fiber.Ctx) error {
	certificateID := c.Locals("certificateID").(uint)

	cert, err := ctl.Repo.FindCertificate(certificateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Certificate not found",
			})
		}
		log.Printf("Failed to fetch certificate: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch certificate",
		})
	}

	detail := fiber.Map{
		"id":                cert.ID,
		"certificateNumber": cert.CertificateNumber,
		"issuedAt":          cert.IssuedAt,
		"completionDate":    cert.CompletionDate,
	}
	if user, err := ctl.Repo.FindUser(cert.UserID); err == nil {
		detail["user"] = fiber.Map{
			"id":          user.ID,
			"displayName": user.DisplayName,
		}
	}
	if course, err := ctl.Repo.FindCourse(cert.CourseID); err == nil {
		detail["course"] = fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"category":    course.Category,
		}
	}

	return c.JSON(detail)
}

// IssueCertificate issues a certificate for the caller's enrollment once all
// of the course's missions are complete. Idempotent: re-issuing returns the
// original certificate unchanged.
func (ctl *Controller) IssueCertificate(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := ctl.Repo.FindEnrollmentByID(enrollmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Enrollment not found",
			})
		}
		log.Printf("Failed to issue certificate: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue certificate",
		})
	}

	if existing, err := ctl.Repo.FindCertificateByEnrollment(enrollmentID); err == nil {
		return c.JSON(fiber.Map{
			"message":     "Certificate already issued",
			"certificate": existing,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to issue certificate: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue certificate",
		})
	}

	completed, total, err := ctl.Repo.CompletionCounts(enrollment.ID, enrollment.CourseID)
	if err != nil {
		log.Printf("Failed to issue certificate: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue certificate",
		})
	}
	if completed < total || total == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "Course not completed yet",
			"completed": completed,
			"total":     total,
		})
	}

	cert := models.Certificate{
		UserID:            userID,
		CourseID:          enrollment.CourseID,
		EnrollmentID:      enrollment.ID,
		CertificateNumber: utils.GenerateCertificateNumber(),
		CompletionDate:    time.Now(),
	}
	if err := ctl.Repo.CreateCertificate(&cert); err != nil {
		log.Printf("Failed to issue certificate: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue certificate",
		})
	}

	if err := ctl.Repo.MarkEnrollmentCompleted(enrollment.ID); err != nil {
		log.Printf("Failed to mark enrollment completed: %v", err)
	}

	// Grant the course-completion badge, if the course defines one and the
	// user does not hold it yet
	var earnedBadge *models.Badge
	if badge, err := ctl.Repo.CourseBadge(enrollment.CourseID); err == nil {
		granted, err := ctl.Repo.GrantBadge(userID, badge.ID)
		if err != nil {
			log.Printf("Failed to grant badge: %v", err)
		} else if granted {
			earnedBadge = badge
		}
	}

	return c.JSON(fiber.Map{
		"message":     "Certificate issued successfully!",
		"certificate": cert,
		"earnedBadge": earnedBadge,
	})
}
