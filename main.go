package main

import (
	"log"

	"nextquest/config"
	achievementController "nextquest/controllers/achievement"
	adminController "nextquest/controllers/admin"
	authController "nextquest/controllers/auth"
	courseController "nextquest/controllers/course"
	"nextquest/database"
	"nextquest/middleware"
	"nextquest/repository"
	"nextquest/routers/achievementRoutes"
	"nextquest/routers/authRoutes"
	"nextquest/routers/courseRoutes"
	"nextquest/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.New(db)
	session := middleware.NewSession(cfg)
	notifier := utils.NewCompletionNotifier(cfg.CompletionWebhookURL)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(repo, session))
	courseRoutes.SetupCourseRoutes(app, session, courseController.New(repo, notifier))
	achievementRoutes.SetupAchievementRoutes(app, session, achievementController.New(repo))

	admin := adminController.New(repo)
	app.Post("/admin/seed", admin.Seed)

	utils.InitializeStreakScheduler(db)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
