package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/codetrackr/internal/domain/user"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

func (r *postgresUserRepo) Save(ctx context.Context, a *user.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := querier(ctx, r.db).Exec(ctx, query,
		a.ID, a.Username, a.Email, a.PasswordHash, a.CreatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return apperror.NewConflict("account", "email", a.Email)
			}
			return apperror.NewConflict("account", "username", a.Username)
		}
		return apperror.NewInternal("failed to save account", err)
	}
	return nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.Account, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE id = $1
	`
	return r.scanAccount(querier(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *postgresUserRepo) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE username = $1
	`
	return r.scanAccount(querier(ctx, r.db).QueryRow(ctx, query, username))
}

func (r *postgresUserRepo) scanAccount(row pgx.Row) (*user.Account, error) {
	a := &user.Account{}
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("account", "")
		}
		return nil, apperror.NewInternal("failed to scan account row", err)
	}
	return a, nil
}
