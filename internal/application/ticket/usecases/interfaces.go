package usecases

import "context"

// TransactionManager runs a function inside a single database transaction.
// Repository calls made with the derived context share that transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
