package authController

import (
	"errors"
	"fmt"
	"log"
	"time"

	"nextquest/middleware"
	"nextquest/models"
	"nextquest/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	Repo    *repository.Repository
	Session *middleware.Session
}

func New(repo *repository.Repository, session *middleware.Session) *Controller {
	return &Controller{Repo: repo, Session: session}
}

// AutoCreate provisions a fresh user on first visit and opens a session for it
func (ctl *Controller) AutoCreate(c *fiber.Ctx) error {
	user := models.User{
		DisplayName: fmt.Sprintf("User_%d", time.Now().UnixMilli()),
		Level:       1,
	}

	if err := ctl.Repo.CreateUser(&user); err != nil {
		log.Printf("Auto user creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create user",
		})
	}

	if _, err := ctl.Session.Create(c, user.ID, user.DisplayName); err != nil {
		log.Printf("Session creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create user",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":          user.ID,
			"displayName": user.DisplayName,
			"level":       user.Level,
			"xp":          user.XP,
		},
	})
}

// Logout clears the session cookie
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	ctl.Session.Clear(c)
	return c.JSON(fiber.Map{"success": true})
}

// Me resolves the session to the full user row
func (ctl *Controller) Me(c *fiber.Ctx) error {
	userID, ok := ctl.Session.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	user, err := ctl.Repo.FindUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "User not found",
			})
		}
		log.Printf("Get user failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get user",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":            user.ID,
			"displayName":   user.DisplayName,
			"level":         user.Level,
			"xp":            user.XP,
			"currentStreak": user.CurrentStreak,
		},
	})
}
