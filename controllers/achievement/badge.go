package achievementController

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListBadges returns the caller's badge grants with their definitions,
// ordered by earn time
func (ctl *Controller) ListBadges(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	grants, err := ctl.Repo.BadgesForUser(userID)
	if err != nil {
		log.Printf("Failed to fetch badges: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch badges",
		})
	}

	result := make([]fiber.Map, len(grants))
	for i, grant := range grants {
		row := fiber.Map{
			"id":       grant.ID,
			"earnedAt": grant.EarnedAt,
		}
		badge, err := ctl.Repo.FindBadge(grant.BadgeID)
		if err != nil {
			log.Printf("Failed to fetch badges: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch badges",
			})
		}
		row["badge"] = fiber.Map{
			"id":          badge.ID,
			"name":        badge.Name,
			"description": badge.Description,
			"iconUrl":     badge.IconURL,
			"rarity":      badge.Rarity,
		}
		if badge.CourseID != nil {
			if course, err := ctl.Repo.FindCourse(*badge.CourseID); err == nil {
				row["course"] = fiber.Map{
					"id":    course.ID,
					"title": course.Title,
				}
			}
		}
		result[i] = row
	}

	return c.JSON(result)
}
