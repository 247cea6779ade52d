package middleware

import (
	"fmt"
	"log"
	"time"

	"nextquest/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie is the name of the http-only cookie carrying the signed token
const SessionCookie = "session"

// Session issues, verifies, and revokes the signed credential binding a user
// to their cookie-held token.
type Session struct {
	key      []byte
	validity time.Duration
}

func NewSession(cfg *config.Config) *Session {
	return &Session{
		key:      []byte(cfg.JWTKey),
		validity: time.Duration(cfg.SessionDays) * 24 * time.Hour,
	}
}

// Create signs a token for the user and stores it as an http-only cookie,
// replacing any existing session cookie.
func (s *Session) Create(c *fiber.Ctx, userID uint, displayName string) (string, error) {
	claims := jwt.MapClaims{
		"userId":      userID,
		"displayName": displayName,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(s.validity).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.validity.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return token, nil
}

// Clear removes the session cookie
func (s *Session) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// UserID reads and verifies the session cookie. Any failure (missing,
// malformed, expired, bad signature) is logged and reported as
// unauthenticated, never as an error.
func (s *Session) UserID(c *fiber.Ctx) (uint, bool) {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil || !token.Valid {
		log.Printf("Invalid session: %v", err)
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		log.Println("Invalid session: missing userId claim")
		return 0, false
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		log.Println("Invalid session: malformed userId claim")
		return 0, false
	}

	return uint(userID), true
}

// Required rejects unauthenticated requests and stores the user id in Locals
func (s *Session) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.UserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"ok":    false,
				"error": "Unauthorized",
			})
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}

// Optional stores the user id in Locals when a valid session is present and
// lets anonymous requests through
func (s *Session) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := s.UserID(c); ok {
			c.Locals("userId", userID)
		}
		return c.Next()
	}
}

// JsonResponse writes the standard response envelope
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}
