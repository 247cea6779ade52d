package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// NextStreak computes a user's streak after new activity. Activity on the
// same calendar day keeps the streak, activity on the day after the last one
// extends it, anything else starts over at 1.
func NextStreak(current int, lastActivity *time.Time, activity time.Time) int {
	if lastActivity == nil {
		return 1
	}

	today := now.With(activity).BeginningOfDay()
	lastDay := now.With(*lastActivity).BeginningOfDay()

	switch {
	case lastDay.Equal(today):
		if current == 0 {
			return 1
		}
		return current
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}
