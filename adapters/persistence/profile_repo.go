package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/codetrackr/internal/domain/profile"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `owner_id, github_url, leetcode_url, linkedin_url, bio, created_at, updated_at`

func (r *postgresProfileRepo) GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	p, err := r.get(ctx, ownerID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	// First read for this account: insert the empty row. ON CONFLICT keeps
	// concurrent first reads from failing.
	query := `
		INSERT INTO profiles (owner_id, bio, created_at, updated_at)
		VALUES ($1, '', NOW(), NOW())
		ON CONFLICT (owner_id) DO NOTHING
	`
	if _, err := querier(ctx, r.db).Exec(ctx, query, ownerID); err != nil {
		return nil, apperror.NewInternal("failed to create empty profile", err)
	}
	return r.get(ctx, ownerID)
}

func (r *postgresProfileRepo) get(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE owner_id = $1
	`
	p := &profile.Profile{}
	err := querier(ctx, r.db).QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.GithubURL,
		&p.LeetcodeURL,
		&p.LinkedinURL,
		&p.Bio,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (owner_id, github_url, leetcode_url, linkedin_url, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := querier(ctx, r.db).Exec(ctx, query,
		p.OwnerID, p.GithubURL, p.LeetcodeURL, p.LinkedinURL, p.Bio, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			github_url = $2, leetcode_url = $3, linkedin_url = $4, bio = $5, updated_at = $6
		WHERE owner_id = $1
	`
	cmdTag, err := querier(ctx, r.db).Exec(ctx, query,
		p.OwnerID, p.GithubURL, p.LeetcodeURL, p.LinkedinURL, p.Bio, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.OwnerID.String())
	}
	return nil
}
