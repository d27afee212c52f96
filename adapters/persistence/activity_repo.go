package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type postgresActivityRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresActivityRepo(db *pgxpool.Pool, logger logger.Logger) activity.Repository {
	return &postgresActivityRepo{db: db, logger: logger}
}

func (r *postgresActivityRepo) Save(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (id, owner_id, activity_type, description, question_id, project_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := querier(ctx, r.db).Exec(ctx, query,
		a.ID, a.OwnerID, string(a.Type), a.Description, a.QuestionID, a.ProjectID, a.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save activity", err)
	}
	return nil
}

func (r *postgresActivityRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*activity.FeedEntry, error) {
	query := `
		SELECT a.id, a.owner_id, a.activity_type, a.description, a.question_id, a.project_id, a.created_at,
		       q.title, p.title
		FROM activities a
		LEFT JOIN questions q ON a.question_id = q.id
		LEFT JOIN projects p ON a.project_id = p.id
		WHERE a.owner_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`
	rows, err := querier(ctx, r.db).Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to query activities by owner", err)
	}
	defer rows.Close()

	entries := make([]*activity.FeedEntry, 0)
	for rows.Next() {
		e := &activity.FeedEntry{}
		var activityType string
		err := rows.Scan(
			&e.ID,
			&e.OwnerID,
			&activityType,
			&e.Description,
			&e.QuestionID,
			&e.ProjectID,
			&e.CreatedAt,
			&e.QuestionTitle,
			&e.ProjectTitle,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan activity row", err)
		}
		e.Type = activity.Type(activityType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating activity rows", err)
	}
	return entries, nil
}

func (r *postgresActivityRepo) CountSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM activities WHERE owner_id = $1 AND created_at >= $2`

	var count int
	if err := querier(ctx, r.db).QueryRow(ctx, query, ownerID, since).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count recent activities", err)
	}
	return count, nil
}
