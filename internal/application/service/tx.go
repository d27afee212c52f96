package service

import "context"

// TransactionManager runs fn inside a single storage transaction. The
// transaction travels in the context; repositories called with that context
// join it. fn returning an error rolls everything back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
