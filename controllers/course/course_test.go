package courseController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nextquest/config"
	courseController "nextquest/controllers/course"
	"nextquest/database"
	"nextquest/middleware"
	"nextquest/models"
	"nextquest/repository"
	"nextquest/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newApp(t *testing.T) (*fiber.App, *repository.Repository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := repository.New(db)
	session := middleware.NewSession(&config.Config{JWTKey: testSecret, SessionDays: 7})

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, session, courseController.New(repo, nil))
	return app, repo
}

func sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()

	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func seedUser(t *testing.T, repo *repository.Repository) models.User {
	t.Helper()
	user := models.User{DisplayName: "learner", Level: 1}
	require.NoError(t, repo.CreateUser(&user))
	return user
}

func seedCourse(t *testing.T, repo *repository.Repository, missionCount int) (models.Course, []models.Mission) {
	t.Helper()

	course := models.Course{Title: "Test Course", IsPublic: true, IsFree: true, Category: "Testing"}
	require.NoError(t, repo.DB().Create(&course).Error)

	missions := make([]models.Mission, missionCount)
	for i := range missions {
		missions[i] = models.Mission{CourseID: course.ID, OrderIndex: i, Title: fmt.Sprintf("Mission %d", i+1)}
		require.NoError(t, repo.DB().Create(&missions[i]).Error)
	}
	return course, missions
}

func doJSON(t *testing.T, app *fiber.App, method, target string, cookie *http.Cookie) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestListCoursesOnlyPublic(t *testing.T) {
	app, repo := newApp(t)
	seedCourse(t, repo, 1)
	hidden := models.Course{Title: "Hidden", IsPublic: false}
	require.NoError(t, repo.DB().Create(&hidden).Error)

	status, body := doJSON(t, app, http.MethodGet, "/courses", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["ok"])
	require.Len(t, body["courses"], 1)
}

func TestCourseDetailAnonymous(t *testing.T) {
	app, repo := newApp(t)
	course, _ := seedCourse(t, repo, 2)

	status, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", course.ID), nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["ok"])
	require.Nil(t, body["enrollment"])
	require.EqualValues(t, 0, body["progressPercent"])
	require.Len(t, body["missions"], 2)
}

func TestCourseDetailNotFound(t *testing.T) {
	app, _ := newApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/courses/999", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Course not found", body["error"])
}

func TestEnrollRequiresSession(t *testing.T) {
	app, repo := newApp(t)
	course, _ := seedCourse(t, repo, 1)

	status, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/courses/%d/enroll", course.ID), nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["ok"])
	require.Equal(t, "Unauthorized", body["error"])
}

func TestEnrollTwiceReturnsSameEnrollment(t *testing.T) {
	app, repo := newApp(t)
	course, _ := seedCourse(t, repo, 1)
	user := seedUser(t, repo)
	cookie := sessionCookie(t, user.ID)

	target := fmt.Sprintf("/courses/%d/enroll", course.ID)

	status, first := doJSON(t, app, http.MethodPost, target, cookie)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Successfully enrolled", first["message"])

	status, second := doJSON(t, app, http.MethodPost, target, cookie)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Already enrolled", second["message"])

	firstID := first["enrollment"].(map[string]interface{})["ID"]
	secondID := second["enrollment"].(map[string]interface{})["ID"]
	require.Equal(t, firstID, secondID)

	var count int64
	require.NoError(t, repo.DB().Model(&models.Enrollment{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCompleteMissionRequiresSession(t *testing.T) {
	app, repo := newApp(t)
	course, missions := seedCourse(t, repo, 1)

	target := fmt.Sprintf("/courses/%d/missions/%d/complete", course.ID, missions[0].ID)
	status, body := doJSON(t, app, http.MethodPost, target, nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["ok"])
	require.Equal(t, "Unauthorized", body["error"])
}

func TestCompleteMissionRequiresEnrollment(t *testing.T) {
	app, repo := newApp(t)
	course, missions := seedCourse(t, repo, 1)
	user := seedUser(t, repo)

	target := fmt.Sprintf("/courses/%d/missions/%d/complete", course.ID, missions[0].ID)
	status, body := doJSON(t, app, http.MethodPost, target, sessionCookie(t, user.ID))
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Not enrolled in this course", body["error"])
}

func TestCompleteMissionUnknownMission(t *testing.T) {
	app, repo := newApp(t)
	course, _ := seedCourse(t, repo, 1)
	user := seedUser(t, repo)
	cookie := sessionCookie(t, user.ID)

	_, _, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)

	target := fmt.Sprintf("/courses/%d/missions/999/complete", course.ID)
	status, body := doJSON(t, app, http.MethodPost, target, cookie)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Mission not found", body["error"])
}

func TestCompleteMissionRejectsForeignMission(t *testing.T) {
	app, repo := newApp(t)
	course, _ := seedCourse(t, repo, 1)
	other := models.Course{Title: "Other", IsPublic: true}
	require.NoError(t, repo.DB().Create(&other).Error)
	foreign := models.Mission{CourseID: other.ID, OrderIndex: 0, Title: "Elsewhere"}
	require.NoError(t, repo.DB().Create(&foreign).Error)

	user := seedUser(t, repo)
	_, _, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)

	target := fmt.Sprintf("/courses/%d/missions/%d/complete", course.ID, foreign.ID)
	status, body := doJSON(t, app, http.MethodPost, target, sessionCookie(t, user.ID))
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Mission not found", body["error"])
}

func TestCompleteMissionProgression(t *testing.T) {
	app, repo := newApp(t)
	course, missions := seedCourse(t, repo, 2)
	user := seedUser(t, repo)
	cookie := sessionCookie(t, user.ID)

	enrollment, _, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)

	// First of two missions: half way, course still open
	target := fmt.Sprintf("/courses/%d/missions/%d/complete", course.ID, missions[0].ID)
	status, body := doJSON(t, app, http.MethodPost, target, cookie)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["ok"])
	require.EqualValues(t, 10, body["xpGain"])
	require.EqualValues(t, 10, body["newXp"])
	require.EqualValues(t, 50, body["progressPercent"])
	require.Equal(t, false, body["isCourseCompleted"])
	require.NotEmpty(t, body["coachMessage"])

	// Retrying the same mission must not award experience again
	status, body = doJSON(t, app, http.MethodPost, target, cookie)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["alreadyCompleted"])

	refetched, err := repo.FindUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, 10, refetched.XP)
	require.Equal(t, 1, refetched.CurrentStreak)
	require.NotNil(t, refetched.LastActivityAt)

	// Final mission completes the course
	target = fmt.Sprintf("/courses/%d/missions/%d/complete", course.ID, missions[1].ID)
	status, body = doJSON(t, app, http.MethodPost, target, cookie)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 100, body["progressPercent"])
	require.Equal(t, true, body["isCourseCompleted"])
	require.EqualValues(t, 20, body["newXp"])

	completedEnrollment, err := repo.FindEnrollmentByID(enrollment.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentCompleted, completedEnrollment.Status)
	require.NotNil(t, completedEnrollment.CompletedAt)
}
