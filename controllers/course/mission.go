package courseController

import (
	"errors"
	"log"
	"math"
	"time"

	"nextquest/models"
	"nextquest/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MissionXP is the fixed experience award for completing a mission
const MissionXP = 10

// CompleteMission marks a mission done for the caller's enrollment, awards
// experience, and transitions the enrollment to completed once every mission
// in the course is done. Completing an already-completed mission is a no-op
// that never awards experience twice.
func (ctl *Controller) CompleteMission(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)
	missionID := c.Locals("missionID").(uint)

	user, err := ctl.Repo.FindUser(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"ok":    false,
			"error": "Unauthorized",
		})
	}

	enrollment, err := ctl.Repo.FindEnrollment(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"ok":    false,
				"error": "Not enrolled in this course",
			})
		}
		log.Printf("Complete mission failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to complete mission",
		})
	}

	mission, err := ctl.Repo.FindMission(missionID)
	if err != nil || mission.CourseID != courseID {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Complete mission failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"ok":    false,
				"error": "Failed to complete mission",
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"ok":    false,
			"error": "Mission not found",
		})
	}

	// Terminal state: a completed mission stays completed, and retries must
	// not double-award experience
	if existing, err := ctl.Repo.FindProgress(enrollment.ID, missionID); err == nil && existing.IsCompleted {
		return c.JSON(fiber.Map{
			"ok":               true,
			"alreadyCompleted": true,
			"message":          "Mission already completed",
		})
	}

	if err := ctl.Repo.CompleteProgress(enrollment.ID, missionID); err != nil {
		log.Printf("Complete mission failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to complete mission",
		})
	}

	// Award experience, derive level, keep the streak current
	activity := time.Now()
	user.XP += MissionXP
	user.Level = user.XP/100 + 1
	user.CurrentStreak = utils.NextStreak(user.CurrentStreak, user.LastActivityAt, activity)
	user.LastActivityAt = &activity
	if err := ctl.Repo.SaveUser(user); err != nil {
		log.Printf("Complete mission failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to complete mission",
		})
	}

	// The count runs after the upsert, so the just-completed mission is
	// included exactly once
	completed, total, err := ctl.Repo.CompletionCounts(enrollment.ID, courseID)
	if err != nil {
		log.Printf("Complete mission failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to complete mission",
		})
	}

	isCourseCompleted := total > 0 && completed >= total
	if isCourseCompleted && enrollment.Status != models.EnrollmentCompleted {
		if err := ctl.Repo.MarkEnrollmentCompleted(enrollment.ID); err != nil {
			log.Printf("Complete mission failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"ok":    false,
				"error": "Failed to complete mission",
			})
		}
		ctl.Notifier.CourseCompleted(userID, courseID, enrollment.ID)
	}

	progressPercent := 0
	if total > 0 {
		progressPercent = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return c.JSON(fiber.Map{
		"ok":                true,
		"xpGain":            MissionXP,
		"newXp":             user.XP,
		"coachMessage":      utils.PickCoachMessage(),
		"isCourseCompleted": isCourseCompleted,
		"progressPercent":   progressPercent,
	})
}
