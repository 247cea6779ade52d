package courseValidator

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

// CourseID validates the :id path parameter and stores it in Locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseID(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid course ID",
			})
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// MissionComplete validates both the course and mission path parameters
func MissionComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseID(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid course ID",
			})
		}

		missionID, ok := parseID(c.Params("missionId"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid mission ID",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("missionID", missionID)
		return c.Next()
	}
}
