package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore maps opaque refresh tokens to account IDs with a TTL.
// Consume removes the token so each one is usable exactly once.
type RefreshTokenStore interface {
	Store(ctx context.Context, token string, ownerID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}
