package courseRoutes

import (
	courseController "nextquest/controllers/course"
	"nextquest/middleware"
	validators "nextquest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course routes
func SetupCourseRoutes(app *fiber.App, session *middleware.Session, ctl *courseController.Controller) {
	courseGroup := app.Group("/courses")

	// Catalog is public; course detail personalizes when a session exists
	courseGroup.Get("/", ctl.ListCourses)
	courseGroup.Get("/:id", session.Optional(), validators.CourseID(), ctl.CourseDetail)

	// Enrollment and mission completion
	courseGroup.Post("/:id/enroll", session.Required(), validators.CourseID(), ctl.Enroll)
	courseGroup.Post("/:id/missions/:missionId/complete", session.Required(), validators.MissionComplete(), ctl.CompleteMission)
}
