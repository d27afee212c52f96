package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type postgresQuestionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresQuestionRepo(db *pgxpool.Pool, logger logger.Logger) question.Repository {
	return &postgresQuestionRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const questionColumns = `id, owner_id, title, description, difficulty, status, platform, problem_url, solution_url, notes, time_spent, created_at, updated_at`

func scanQuestion(row pgx.Row) (*question.Question, error) {
	q := &question.Question{}
	var difficulty, status string

	err := row.Scan(
		&q.ID,
		&q.OwnerID,
		&q.Title,
		&q.Description,
		&difficulty,
		&status,
		&q.Platform,
		&q.ProblemURL,
		&q.SolutionURL,
		&q.Notes,
		&q.TimeSpent,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("question", "")
		}
		return nil, apperror.NewInternal("failed to scan question row", err)
	}

	q.Difficulty = question.Difficulty(difficulty)
	q.Status = question.Status(status)
	return q, nil
}

func scanQuestions(rows pgx.Rows) ([]*question.Question, error) {
	defer rows.Close()
	questions := make([]*question.Question, 0)

	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating question rows", err)
	}
	return questions, nil
}

func (r *postgresQuestionRepo) Save(ctx context.Context, q *question.Question) error {
	query := `
		INSERT INTO questions (id, owner_id, title, description, difficulty, status, platform, problem_url, solution_url, notes, time_spent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := querier(ctx, r.db).Exec(ctx, query,
		q.ID, q.OwnerID, q.Title, q.Description, string(q.Difficulty), string(q.Status),
		q.Platform, q.ProblemURL, q.SolutionURL, q.Notes, q.TimeSpent,
		q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save question", err)
	}
	return nil
}

func (r *postgresQuestionRepo) Update(ctx context.Context, q *question.Question) error {
	query := `
		UPDATE questions SET
			title = $2, description = $3, difficulty = $4, status = $5, platform = $6,
			problem_url = $7, solution_url = $8, notes = $9, time_spent = $10, updated_at = $11
		WHERE id = $1 AND owner_id = $12
	`
	cmdTag, err := querier(ctx, r.db).Exec(ctx, query,
		q.ID, q.Title, q.Description, string(q.Difficulty), string(q.Status), q.Platform,
		q.ProblemURL, q.SolutionURL, q.Notes, q.TimeSpent, q.UpdatedAt,
		q.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update question", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("question", q.ID.String())
	}
	return nil
}

func (r *postgresQuestionRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM questions WHERE id = $1 AND owner_id = $2`
	cmdTag, err := querier(ctx, r.db).Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete question", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("question", id.String())
	}
	return nil
}

func (r *postgresQuestionRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*question.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE id = $1 AND owner_id = $2
	`
	row := querier(ctx, r.db).QueryRow(ctx, query, id, ownerID)
	return scanQuestion(row)
}

func (r *postgresQuestionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*question.Question, error) {
	builder := psql.Select(questionColumns).
		From("questions").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list questions query", err)
	}

	rows, err := querier(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query questions by owner", err)
	}

	return scanQuestions(rows)
}

func (r *postgresQuestionRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.count(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *postgresQuestionRepo) CountByOwnerWithStatus(ctx context.Context, ownerID uuid.UUID, status question.Status) (int, error) {
	return r.count(ctx, sq.Eq{"owner_id": ownerID, "status": string(status)})
}

func (r *postgresQuestionRepo) count(ctx context.Context, pred sq.Eq) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From("questions").Where(pred).ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count questions query", err)
	}

	var count int
	if err := querier(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count questions", err)
	}
	return count, nil
}

func (r *postgresQuestionRepo) CountByDifficulty(ctx context.Context, ownerID uuid.UUID) (map[question.Difficulty]int, error) {
	sql, args, err := psql.Select("difficulty", "COUNT(*)").
		From("questions").
		Where(sq.Eq{"owner_id": ownerID}).
		GroupBy("difficulty").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build group by difficulty query", err)
	}

	rows, err := querier(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to group questions by difficulty", err)
	}
	defer rows.Close()

	// Only difficulties actually present appear; empty buckets are omitted.
	counts := make(map[question.Difficulty]int)
	for rows.Next() {
		var difficulty string
		var count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, apperror.NewInternal("failed to scan difficulty count row", err)
		}
		counts[question.Difficulty(difficulty)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating difficulty count rows", err)
	}
	return counts, nil
}
