package question

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotStarted    Status = "not_started"
	StatusInProgress    Status = "in_progress"
	StatusCompleted     Status = "completed"
	StatusNeedsRevision Status = "needs_revision"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Status      Status     `json:"status"`
	Platform    string     `json:"platform"`
	ProblemURL  *string    `json:"problem_url"`
	SolutionURL *string    `json:"solution_url"`
	Notes       string     `json:"notes"`
	TimeSpent   int        `json:"time_spent"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrNegativeTimeSpent = errors.New("time_spent cannot be negative")
	ErrQuestionNotFound  = errors.New("question not found")
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusNeedsRevision:
		return true
	}
	return false
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (q *Question) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrTitleRequired
	}
	if !q.Status.Valid() {
		return ErrInvalidStatus
	}
	if !q.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}
	if q.TimeSpent < 0 {
		return ErrNegativeTimeSpent
	}
	return nil
}

// Update carries submitted fields for an edit. Nil pointers keep the
// current value.
type Update struct {
	Title       *string
	Description *string
	Difficulty  *Difficulty
	Status      *Status
	Platform    *string
	ProblemURL  *string
	SolutionURL *string
	Notes       *string
	TimeSpent   *int
}

func (q *Question) Apply(u Update, now time.Time) {
	if u.Title != nil {
		q.Title = *u.Title
	}
	if u.Description != nil {
		q.Description = *u.Description
	}
	if u.Difficulty != nil {
		q.Difficulty = *u.Difficulty
	}
	if u.Status != nil {
		q.Status = *u.Status
	}
	if u.Platform != nil {
		q.Platform = *u.Platform
	}
	if u.ProblemURL != nil {
		q.ProblemURL = u.ProblemURL
	}
	if u.SolutionURL != nil {
		q.SolutionURL = u.SolutionURL
	}
	if u.Notes != nil {
		q.Notes = *u.Notes
	}
	if u.TimeSpent != nil {
		q.TimeSpent = *u.TimeSpent
	}
	q.UpdatedAt = now
}

type Repository interface {
	Save(ctx context.Context, q *Question) error
	Update(ctx context.Context, q *Question) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Question, error)
	// ListByOwner returns the account's questions newest-updated-first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Question, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountByOwnerWithStatus(ctx context.Context, ownerID uuid.UUID, status Status) (int, error)
	// CountByDifficulty omits difficulties with no questions.
	CountByDifficulty(ctx context.Context, ownerID uuid.UUID) (map[Difficulty]int, error)
}
