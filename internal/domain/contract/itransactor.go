package contract

import "context"

// ITransactor runs a function as one atomic unit against the storage
// backend. Multi-step effects such as cafe approval (create cafe, set the
// owner's cafe id, delete the pending request) must not be partially
// observable, so they run inside WithinTransaction. The Mongo implementation
// uses a session transaction; the in-memory implementation holds the store's
// write lock for the duration of fn.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
