package jobqueue

import (
	"context"
	"time"

	"github.com/hirepath/hirepath/internal/domain/progress"
)

// OnboardingEvents fans completed onboardings out through the job queue. The
// deduplication id pins one delivery per user and flow, so a retried Complete
// cannot double-publish.
type OnboardingEvents struct {
	publisher *Publisher
	path      string
}

func NewOnboardingEvents(publisher *Publisher, path string) *OnboardingEvents {
	if path == "" {
		path = "/v1/internal/jobs/onboarding-completed"
	}
	return &OnboardingEvents{publisher: publisher, path: path}
}

type onboardingCompletedPayload struct {
	UserID      string `json:"user_id"`
	Flow        string `json:"flow"`
	RoleID      string `json:"role_id,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	CompletedAt string `json:"completed_at"`
}

func (e *OnboardingEvents) PublishOnboardingCompleted(ctx context.Context, rec progress.Record) error {
	payload := onboardingCompletedPayload{
		UserID:      rec.UserID,
		Flow:        string(rec.Flow),
		RoleID:      rec.RoleID,
		CategoryID:  rec.CategoryID,
		CompletedAt: rec.UpdatedAt.UTC().Format(time.RFC3339),
	}

	return e.publisher.Enqueue(ctx, e.path, payload, 0, "onboarding-completed:"+rec.UserID+":"+string(rec.Flow))
}
