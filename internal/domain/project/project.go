package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
	StatusCancelled  Status = "cancelled"
)

type Project struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       Status     `json:"status"`
	GithubURL    *string    `json:"github_url"`
	LiveURL      *string    `json:"live_url"`
	Technologies string     `json:"technologies"`
	Notes        string     `json:"notes"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrProjectNotFound = errors.New("project not found")
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// TechnologiesList splits the raw comma-joined technologies string for
// display. Entries are whitespace-trimmed but not de-duplicated; the stored
// string is kept exactly as submitted.
func (p *Project) TechnologiesList() []string {
	if p.Technologies == "" {
		return []string{}
	}
	parts := strings.Split(p.Technologies, ",")
	list := make([]string, len(parts))
	for i, t := range parts {
		list[i] = strings.TrimSpace(t)
	}
	return list
}

// Update carries submitted fields for an edit. Nil pointers keep the
// current value.
type Update struct {
	Title        *string
	Description  *string
	Status       *Status
	GithubURL    *string
	LiveURL      *string
	Technologies *string
	Notes        *string
	StartDate    *time.Time
	EndDate      *time.Time
}

func (p *Project) Apply(u Update, now time.Time) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.GithubURL != nil {
		p.GithubURL = u.GithubURL
	}
	if u.LiveURL != nil {
		p.LiveURL = u.LiveURL
	}
	if u.Technologies != nil {
		p.Technologies = *u.Technologies
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
	if u.StartDate != nil {
		p.StartDate = u.StartDate
	}
	if u.EndDate != nil {
		p.EndDate = u.EndDate
	}
	p.UpdatedAt = now
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Project, error)
	// ListByOwner returns the account's projects newest-updated-first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountByOwnerWithStatus(ctx context.Context, ownerID uuid.UUID, status Status) (int, error)
	// CountByStatus omits statuses with no projects.
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[Status]int, error)
}
