package achievementRoutes

import (
	achievementController "nextquest/controllers/achievement"
	"nextquest/middleware"
	validators "nextquest/validators/achievement"

	"github.com/gofiber/fiber/v2"
)

// SetupAchievementRoutes sets up certificate and badge routes
func SetupAchievementRoutes(app *fiber.App, session *middleware.Session, ctl *achievementController.Controller) {
	certGroup := app.Group("/certificates")

	certGroup.Get("/", session.Required(), ctl.ListCertificates)
	// Certificate detail is public on purpose: anyone holding the id may
	// verify the certificate
	certGroup.Get("/:id", validators.CertificateID(), ctl.CertificateDetail)
	// Issuance addresses the enrollment, not an existing certificate
	certGroup.Post("/:id", session.Required(), validators.EnrollmentID(), ctl.IssueCertificate)

	app.Get("/badges", session.Required(), ctl.ListBadges)
}
