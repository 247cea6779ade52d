package adminController

import (
	"log"

	"nextquest/middleware"
	"nextquest/models"
	"nextquest/repository"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Repo *repository.Repository
}

func New(repo *repository.Repository) *Controller {
	return &Controller{Repo: repo}
}

type seedCourse struct {
	course   models.Course
	badge    models.Badge
	missions []models.Mission
}

// Seed loads the demo catalog: three courses with ordered missions and a
// completion badge each. Intended for local development and demos only.
func (ctl *Controller) Seed(c *fiber.Ctx) error {
	catalog := []seedCourse{
		{
			course: models.Course{
				Title:       "Python Basics",
				Description: "A first programming course in Python. Covers variables, conditionals, and loops.",
				IsPublic:    true,
				IsFree:      true,
				Category:    "Programming",
			},
			badge: models.Badge{
				Name:        "Python Beginner Master",
				Description: "Completed the Python Basics course!",
				IconURL:     "🐍",
				Rarity:      models.RarityCommon,
			},
			missions: []models.Mission{
				{OrderIndex: 0, Title: "Install Python", Content: "Download Python from python.org and verify with `python --version`.", EstimatedMinutes: 15},
				{OrderIndex: 1, Title: "Your first program: Hello World", Content: "Use the print function to put text on the screen:\n\n```python\nprint(\"Hello, World!\")\n```", EstimatedMinutes: 10},
				{OrderIndex: 2, Title: "Variables and types", Content: "Learn the basic data types: int, float, str, bool.", EstimatedMinutes: 20},
				{OrderIndex: 3, Title: "Master conditionals", Content: "Branch with if/else:\n\n```python\nif age >= 18:\n    print(\"adult\")\n```", EstimatedMinutes: 25},
				{OrderIndex: 4, Title: "Learn loops", Content: "Repeat work with for and while loops.", EstimatedMinutes: 30},
			},
		},
		{
			course: models.Course{
				Title:       "First Steps in Web Development",
				Description: "Learn the basics of HTML, CSS, and JavaScript and build your own web page!",
				IsPublic:    true,
				IsFree:      true,
				Category:    "Web Development",
			},
			badge: models.Badge{
				Name:        "Web Dev Debut",
				Description: "Completed the First Steps in Web Development course!",
				IconURL:     "🌐",
				Rarity:      models.RarityRare,
			},
			missions: []models.Mission{
				{OrderIndex: 0, Title: "Understand HTML structure", Content: "Learn the basic tags: html, head, body, h1.", EstimatedMinutes: 20},
				{OrderIndex: 1, Title: "Style it with CSS", Content: "Add colors and layout with CSS rules.", EstimatedMinutes: 25},
				{OrderIndex: 2, Title: "Add behavior with JavaScript", Content: "Show an alert when a button is clicked.", EstimatedMinutes: 30},
			},
		},
		{
			course: models.Course{
				Title:       "AI App Development Master",
				Description: "Build practical AI applications on top of LLM APIs.",
				IsPublic:    true,
				IsFree:      false,
				Category:    "AI/ML",
			},
			badge: models.Badge{
				Name:        "AI Master",
				Description: "Completed the AI App Development Master course!",
				IconURL:     "🤖",
				Rarity:      models.RarityLegendary,
			},
			missions: []models.Mission{
				{OrderIndex: 0, Title: "Get an API key", Content: "Create an account and issue an API key.", EstimatedMinutes: 10},
				{OrderIndex: 1, Title: "Call the chat API", Content: "Send your first completion request and read the response.", EstimatedMinutes: 30},
				{OrderIndex: 2, Title: "Ship a small assistant", Content: "Wire the API into a tiny command-line assistant.", EstimatedMinutes: 45},
			},
		},
	}

	db := ctl.Repo.DB()
	created := 0
	for _, entry := range catalog {
		course := entry.course
		if err := db.Create(&course).Error; err != nil {
			log.Printf("Seed failed creating course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Seeding failed!", nil)
		}

		badge := entry.badge
		badge.CourseID = &course.ID
		if err := db.Create(&badge).Error; err != nil {
			log.Printf("Seed failed creating badge: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Seeding failed!", nil)
		}

		for _, mission := range entry.missions {
			mission.CourseID = course.ID
			if err := db.Create(&mission).Error; err != nil {
				log.Printf("Seed failed creating mission: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Seeding failed!", nil)
			}
		}
		created++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seed data created successfully!", fiber.Map{
		"courses": created,
	})
}
