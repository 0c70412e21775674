package inmem

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
)

// Transactor makes a function atomic against the in-memory store: it holds
// the write lock for the duration of fn and rolls every collection back to
// a snapshot when fn fails, so partial effects are never observable.
type Transactor struct {
	store *Store
}

func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

var _ contract.ITransactor = (*Transactor)(nil)

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		// Nested transactions join the outer one.
		return fn(ctx)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	snap := t.store.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}
