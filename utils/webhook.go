package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// CompletionNotifier posts a notification to an external endpoint when a
// learner finishes a course. Delivery is fire-and-forget: failures are
// logged and never affect the request that triggered them.
type CompletionNotifier struct {
	url    string
	client *resty.Client
}

// NewCompletionNotifier returns a notifier, or nil when no URL is configured
func NewCompletionNotifier(url string) *CompletionNotifier {
	if url == "" {
		return nil
	}
	return &CompletionNotifier{
		url:    url,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

// CourseCompleted announces that the user completed the course
func (n *CompletionNotifier) CourseCompleted(userID, courseID, enrollmentID uint) {
	if n == nil {
		return
	}

	go func() {
		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"event":        "course.completed",
				"userId":       userID,
				"courseId":     courseID,
				"enrollmentId": enrollmentID,
				"completedAt":  time.Now().UTC(),
			}).
			Post(n.url)
		if err != nil {
			log.Printf("Error sending completion webhook: %v", err)
			return
		}
		if resp.IsError() {
			log.Printf("Completion webhook failed: %s", resp.Status())
		}
	}()
}
