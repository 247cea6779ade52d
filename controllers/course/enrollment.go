package courseController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Enroll registers the caller in a course. Idempotent: an existing
// enrollment is returned unchanged with an "already enrolled" message.
func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	if _, err := ctl.Repo.FindUser(userID); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"ok":    false,
			"error": "Unauthorized",
		})
	}

	if _, err := ctl.Repo.FindCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"ok":    false,
				"error": "Course not found",
			})
		}
		log.Printf("Enroll failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to enroll",
		})
	}

	enrollment, created, err := ctl.Repo.EnsureEnrollment(userID, courseID)
	if err != nil {
		log.Printf("Enroll failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to enroll",
		})
	}

	message := "Successfully enrolled"
	if !created {
		message = "Already enrolled"
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"enrollment": enrollment,
		"message":    message,
	})
}
