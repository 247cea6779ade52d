package courseController

import (
	"errors"
	"log"
	"math"

	"nextquest/models"
	"nextquest/repository"
	"nextquest/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	Repo     *repository.Repository
	Notifier *utils.CompletionNotifier
}

func New(repo *repository.Repository, notifier *utils.CompletionNotifier) *Controller {
	return &Controller{Repo: repo, Notifier: notifier}
}

// ListCourses returns the public course catalog with enrollment counts
func (ctl *Controller) ListCourses(c *fiber.Ctx) error {
	courses, err := ctl.Repo.PublicCourses()
	if err != nil {
		log.Printf("Get courses failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to fetch courses",
		})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"courses": courses,
	})
}

// CourseDetail returns a course with its ordered missions. When the caller
// holds a session, each mission carries the caller's completion state and the
// response includes their enrollment and overall progress.
func (ctl *Controller) CourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctl.Repo.FindCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"ok":    false,
				"error": "Course not found",
			})
		}
		log.Printf("Get course detail failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to fetch course detail",
		})
	}

	enrollmentCount, err := ctl.Repo.CountEnrollments(courseID)
	if err != nil {
		log.Printf("Get course detail failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to fetch course detail",
		})
	}

	missions, err := ctl.Repo.MissionsForCourse(courseID)
	if err != nil {
		log.Printf("Get course detail failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to fetch course detail",
		})
	}

	// Session is optional here; anonymous callers see no enrollment state
	var enrollment *models.Enrollment
	completedIDs := map[uint]bool{}
	if userID, ok := c.Locals("userId").(uint); ok {
		if found, err := ctl.Repo.FindEnrollment(userID, courseID); err == nil {
			enrollment = found
			ids, err := ctl.Repo.CompletedMissionIDs(found.ID)
			if err != nil {
				log.Printf("Get course detail failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"ok":    false,
					"error": "Failed to fetch course detail",
				})
			}
			for _, id := range ids {
				completedIDs[id] = true
			}
		}
	}

	type missionWithProgress struct {
		models.Mission
		IsCompleted bool `json:"is_completed"`
	}
	missionList := make([]missionWithProgress, len(missions))
	for i, mission := range missions {
		missionList[i] = missionWithProgress{
			Mission:     mission,
			IsCompleted: completedIDs[mission.ID],
		}
	}

	progressPercent := 0
	if len(missions) > 0 {
		progressPercent = int(math.Round(float64(len(completedIDs)) / float64(len(missions)) * 100))
	}

	return c.JSON(fiber.Map{
		"ok": true,
		"course": repository.CourseWithCount{
			Course:          *course,
			EnrollmentCount: enrollmentCount,
		},
		"missions":        missionList,
		"enrollment":      enrollment,
		"progressPercent": progressPercent,
	})
}
