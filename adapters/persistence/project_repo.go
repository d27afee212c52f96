package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = `id, owner_id, title, description, status, github_url, live_url, technologies, notes, start_date, end_date, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	var status string

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&status,
		&p.GithubURL,
		&p.LiveURL,
		&p.Technologies,
		&p.Notes,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	p.Status = project.Status(status)
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, owner_id, title, description, status, github_url, live_url, technologies, notes, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := querier(ctx, r.db).Exec(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Description, string(p.Status),
		p.GithubURL, p.LiveURL, p.Technologies, p.Notes,
		p.StartDate, p.EndDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, status = $4, github_url = $5, live_url = $6,
			technologies = $7, notes = $8, start_date = $9, end_date = $10, updated_at = $11
		WHERE id = $1 AND owner_id = $12
	`
	cmdTag, err := querier(ctx, r.db).Exec(ctx, query,
		p.ID, p.Title, p.Description, string(p.Status), p.GithubURL, p.LiveURL,
		p.Technologies, p.Notes, p.StartDate, p.EndDate, p.UpdatedAt,
		p.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND owner_id = $2`
	cmdTag, err := querier(ctx, r.db).Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND owner_id = $2
	`
	row := querier(ctx, r.db).QueryRow(ctx, query, id, ownerID)
	return scanProject(row)
}

func (r *postgresProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := querier(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}

	return scanProjects(rows)
}

func (r *postgresProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.count(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *postgresProjectRepo) CountByOwnerWithStatus(ctx context.Context, ownerID uuid.UUID, status project.Status) (int, error) {
	return r.count(ctx, sq.Eq{"owner_id": ownerID, "status": string(status)})
}

func (r *postgresProjectRepo) count(ctx context.Context, pred sq.Eq) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From("projects").Where(pred).ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count projects query", err)
	}

	var count int
	if err := querier(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count projects", err)
	}
	return count, nil
}

func (r *postgresProjectRepo) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[project.Status]int, error) {
	sql, args, err := psql.Select("status", "COUNT(*)").
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build group by status query", err)
	}

	rows, err := querier(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to group projects by status", err)
	}
	defer rows.Close()

	// Only statuses actually present appear; empty buckets are omitted.
	counts := make(map[project.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, apperror.NewInternal("failed to scan status count row", err)
		}
		counts[project.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating status count rows", err)
	}
	return counts, nil
}
