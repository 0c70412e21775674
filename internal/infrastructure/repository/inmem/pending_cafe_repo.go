package inmem

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type PendingCafeRepository struct {
	store *Store
}

func NewPendingCafeRepository(store *Store) *PendingCafeRepository {
	return &PendingCafeRepository{store: store}
}

var _ contract.IPendingCafeRepository = (*PendingCafeRepository)(nil)

func (r *PendingCafeRepository) CreatePendingCafe(ctx context.Context, req *entity.PendingCafeRequest) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	r.store.pending = append(r.store.pending, *req)
	return nil
}

func (r *PendingCafeRepository) GetPendingCafeByID(ctx context.Context, id string) (*entity.PendingCafeRequest, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := range r.store.pending {
		if r.store.pending[i].ID == id {
			req := r.store.pending[i]
			return &req, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *PendingCafeRepository) GetPendingCafeByUserID(ctx context.Context, userID string) (*entity.PendingCafeRequest, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := range r.store.pending {
		if r.store.pending[i].UserID == userID {
			req := r.store.pending[i]
			return &req, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *PendingCafeRepository) ListPendingCafes(ctx context.Context) ([]entity.PendingCafeRequest, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	return append([]entity.PendingCafeRequest(nil), r.store.pending...), nil
}

func (r *PendingCafeRepository) DeletePendingCafe(ctx context.Context, id string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	// Idempotent: deleting an absent request is a no-op.
	pending := r.store.pending[:0]
	for i := range r.store.pending {
		if r.store.pending[i].ID != id {
			pending = append(pending, r.store.pending[i])
		}
	}
	r.store.pending = pending
	return nil
}
