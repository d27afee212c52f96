package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeQuestionCreated   Type = "question_created"
	TypeQuestionUpdated   Type = "question_updated"
	TypeQuestionCompleted Type = "question_completed"
	TypeProjectCreated    Type = "project_created"
	TypeProjectUpdated    Type = "project_updated"
	TypeProjectCompleted  Type = "project_completed"
	TypeProfileUpdated    Type = "profile_updated"
)

// Activity is an append-only log row. At most one of QuestionID/ProjectID is
// set; rows are never updated after creation and are removed together with
// their subject.
type Activity struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Type        Type       `json:"activity_type"`
	Description string     `json:"description"`
	QuestionID  *uuid.UUID `json:"question_id"`
	ProjectID   *uuid.UUID `json:"project_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FeedEntry is an activity row joined with its subject's current title for
// the feed view.
type FeedEntry struct {
	Activity
	QuestionTitle *string `json:"question_title"`
	ProjectTitle  *string `json:"project_title"`
}

type Repository interface {
	Save(ctx context.Context, a *Activity) error
	// ListRecentByOwner returns up to limit rows, newest first.
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*FeedEntry, error)
	CountSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error)
}
