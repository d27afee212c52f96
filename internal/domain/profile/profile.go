package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile holds the optional public links of one account. Exactly zero or
// one row per account; reads create the row on demand.
type Profile struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	GithubURL   *string   `json:"github_url"`
	LeetcodeURL *string   `json:"leetcode_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Update carries the submitted profile fields. Nil pointers mean the field
// was omitted and keeps its current value.
type Update struct {
	GithubURL   *string
	LeetcodeURL *string
	LinkedinURL *string
	Bio         *string
}

func (p *Profile) Apply(u Update, now time.Time) {
	if u.GithubURL != nil {
		p.GithubURL = u.GithubURL
	}
	if u.LeetcodeURL != nil {
		p.LeetcodeURL = u.LeetcodeURL
	}
	if u.LinkedinURL != nil {
		p.LinkedinURL = u.LinkedinURL
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	p.UpdatedAt = now
}

type Repository interface {
	// GetOrCreate returns the account's profile, inserting an empty one
	// first when none exists yet.
	GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}
