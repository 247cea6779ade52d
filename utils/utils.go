package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// coachMessages is the fixed pool of encouragements shown after a mission
var coachMessages = []string{
	"Amazing! Keep pushing on the next one! 🎯",
	"You did it! You're growing step by step! 💪",
	"Keep this pace and the goal is right ahead! 🏆",
	"Awesome! Stay on a roll! ⭐",
	"Perfect! One step at a time, steady progress! 🚀",
	"Congratulations! Your effort is paying off! 🌟",
	"Fantastic! You can absolutely do this! 💫",
	"Good job! The next mission is waiting for you! 🎉",
}

// PickCoachMessage returns a pseudo-randomly chosen encouragement.
// Purely cosmetic.
func PickCoachMessage() string {
	return coachMessages[rand.Intn(len(coachMessages))]
}

// GenerateCertificateNumber produces a certificate number from a 122-bit
// random space, so collisions are practically impossible without relying on
// the unique column constraint.
func GenerateCertificateNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "NQ-" + raw
}
