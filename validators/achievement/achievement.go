package achievementValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parseID(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CertificateID validates the :id path parameter for certificate reads
func CertificateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		certificateID, ok := parseID(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid certificate ID",
			})
		}

		c.Locals("certificateID", certificateID)
		return c.Next()
	}
}

// EnrollmentID validates the :id path parameter for certificate issuance,
// where the id addresses an enrollment
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := parseID(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid enrollment ID",
			})
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}
