package utils

import (
	"log"
	"time"

	"nextquest/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeStreakScheduler sets up the daily streak audit
func InitializeStreakScheduler(db *gorm.DB) *cron.Cron {
	log.Println("[STREAK-SCHEDULER] Initializing streak scheduler...")

	c := cron.New()

	// Shortly after midnight, zero out streaks broken overnight
	c.AddFunc("5 0 * * *", func() {
		log.Println("[STREAK-SCHEDULER] Running daily streak audit...")
		AuditStreaks(db)
	})

	c.Start()
	log.Println("[STREAK-SCHEDULER] Streak scheduler started - runs daily at 00:05")
	return c
}

// AuditStreaks resets the streak of every user whose last activity predates
// yesterday. Users active yesterday keep theirs; completing a mission today
// will extend it.
func AuditStreaks(db *gorm.DB) {
	cutoff := now.With(time.Now()).BeginningOfDay().AddDate(0, 0, -1)

	result := db.Model(&models.User{}).
		Where("current_streak > 0 AND (last_activity_at IS NULL OR last_activity_at < ?)", cutoff).
		Update("current_streak", 0)
	if result.Error != nil {
		log.Printf("[STREAK-SCHEDULER] Error auditing streaks: %v", result.Error)
		return
	}

	log.Printf("[STREAK-SCHEDULER] Reset streaks for %d inactive users", result.RowsAffected)
}
