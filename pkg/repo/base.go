package repo

import "context"

// Transactor runs fn in one database transaction; see db.Datastore.ExecTx.
type Transactor interface {
	ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error
}
