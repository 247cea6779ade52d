package repository

import (
	"fmt"
	"testing"

	"nextquest/database"
	"nextquest/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return New(db)
}

func seedCourse(t *testing.T, repo *Repository, missionCount int) (models.Course, []models.Mission) {
	t.Helper()

	course := models.Course{Title: "Test Course", IsPublic: true, IsFree: true, Category: "Testing"}
	require.NoError(t, repo.DB().Create(&course).Error)

	missions := make([]models.Mission, missionCount)
	for i := range missions {
		missions[i] = models.Mission{
			CourseID:   course.ID,
			OrderIndex: i,
			Title:      fmt.Sprintf("Mission %d", i+1),
		}
		require.NoError(t, repo.DB().Create(&missions[i]).Error)
	}
	return course, missions
}

func TestEnsureEnrollmentIsIdempotent(t *testing.T) {
	repo := testRepo(t)
	course, _ := seedCourse(t, repo, 1)

	user := models.User{DisplayName: "learner", Level: 1}
	require.NoError(t, repo.CreateUser(&user))

	first, created, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, models.EnrollmentActive, first.Status)

	second, created, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, repo.DB().Model(&models.Enrollment{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCompleteProgressUpsertsSingleRow(t *testing.T) {
	repo := testRepo(t)
	course, missions := seedCourse(t, repo, 2)

	user := models.User{DisplayName: "learner", Level: 1}
	require.NoError(t, repo.CreateUser(&user))
	enrollment, _, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, repo.CompleteProgress(enrollment.ID, missions[0].ID))
	require.NoError(t, repo.CompleteProgress(enrollment.ID, missions[0].ID))

	var count int64
	require.NoError(t, repo.DB().Model(&models.Progress{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	progress, err := repo.FindProgress(enrollment.ID, missions[0].ID)
	require.NoError(t, err)
	require.True(t, progress.IsCompleted)
	require.NotNil(t, progress.CompletedAt)
}

func TestCompletionCounts(t *testing.T) {
	repo := testRepo(t)
	course, missions := seedCourse(t, repo, 3)

	user := models.User{DisplayName: "learner", Level: 1}
	require.NoError(t, repo.CreateUser(&user))
	enrollment, _, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)

	completed, total, err := repo.CompletionCounts(enrollment.ID, course.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, completed)
	require.EqualValues(t, 3, total)

	require.NoError(t, repo.CompleteProgress(enrollment.ID, missions[0].ID))
	require.NoError(t, repo.CompleteProgress(enrollment.ID, missions[2].ID))

	completed, total, err = repo.CompletionCounts(enrollment.ID, course.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, completed)
	require.EqualValues(t, 3, total)
}

func TestGrantBadgeOnce(t *testing.T) {
	repo := testRepo(t)
	course, _ := seedCourse(t, repo, 1)

	user := models.User{DisplayName: "learner", Level: 1}
	require.NoError(t, repo.CreateUser(&user))

	badge := models.Badge{Name: "Finisher", Rarity: models.RarityCommon, CourseID: &course.ID}
	require.NoError(t, repo.DB().Create(&badge).Error)

	granted, err := repo.GrantBadge(user.ID, badge.ID)
	require.NoError(t, err)
	require.True(t, granted)

	granted, err = repo.GrantBadge(user.ID, badge.ID)
	require.NoError(t, err)
	require.False(t, granted)

	var count int64
	require.NoError(t, repo.DB().Model(&models.UserBadge{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestPublicCoursesFiltersAndCounts(t *testing.T) {
	repo := testRepo(t)
	course, _ := seedCourse(t, repo, 1)

	hidden := models.Course{Title: "Hidden Course", IsPublic: false}
	require.NoError(t, repo.DB().Create(&hidden).Error)

	user := models.User{DisplayName: "learner", Level: 1}
	require.NoError(t, repo.CreateUser(&user))
	_, _, err := repo.EnsureEnrollment(user.ID, course.ID)
	require.NoError(t, err)

	courses, err := repo.PublicCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, course.ID, courses[0].ID)
	require.EqualValues(t, 1, courses[0].EnrollmentCount)
}
