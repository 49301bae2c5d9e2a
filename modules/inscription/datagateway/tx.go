package datagateway

import "context"

type Tx interface {
	// Commit commits the transaction
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction.
	// If the transaction is already committed, Rollback should be noop.
	Rollback(ctx context.Context) error
}
