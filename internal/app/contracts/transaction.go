package contracts

import "context"

type TransactionManager interface {
	// WithTransaction runs fn inside a single database transaction. The ctx
	// handed to fn must be used for every repository call that takes part in it.
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
