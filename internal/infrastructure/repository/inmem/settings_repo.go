package inmem

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
)

// SettingsRepository keeps the seed-guard flag in the store.
type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

var _ contract.ISettingsRepository = (*SettingsRepository)(nil)

func (r *SettingsRepository) WasSeeded(ctx context.Context) (bool, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	return r.store.seeded, nil
}

func (r *SettingsRepository) MarkSeeded(ctx context.Context) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	r.store.seeded = true
	return nil
}
