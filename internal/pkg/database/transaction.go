package database

import "context"

// TxRunner executes a function inside a storage transaction. The scan
// path relies on it: the row lock taken inside the transaction is what
// serializes concurrent scans for one (user, date).
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
