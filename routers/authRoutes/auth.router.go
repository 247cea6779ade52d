package authRoutes

import (
	authController "nextquest/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/auto-create", ctl.AutoCreate)
	authGroup.Post("/logout", ctl.Logout)
	authGroup.Get("/me", ctl.Me)
}
