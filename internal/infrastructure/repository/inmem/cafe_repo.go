package inmem

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type CafeRepository struct {
	store *Store
}

func NewCafeRepository(store *Store) *CafeRepository {
	return &CafeRepository{store: store}
}

var _ contract.ICafeRepository = (*CafeRepository)(nil)

func (r *CafeRepository) CreateCafe(ctx context.Context, cafe *entity.Cafe) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	r.store.cafes = append(r.store.cafes, *cafe)
	return nil
}

func (r *CafeRepository) GetCafeByID(ctx context.Context, id string) (*entity.Cafe, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := range r.store.cafes {
		if r.store.cafes[i].ID == id {
			cafe := r.store.cafes[i]
			return &cafe, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *CafeRepository) ListCafes(ctx context.Context) ([]entity.Cafe, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	return append([]entity.Cafe(nil), r.store.cafes...), nil
}

func (r *CafeRepository) UpdateCafeMood(ctx context.Context, id string, mood entity.Mood) (*entity.Cafe, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.cafes {
		if r.store.cafes[i].ID == id {
			r.store.cafes[i].CurrentMood = mood
			cafe := r.store.cafes[i]
			return &cafe, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *CafeRepository) UpdateCafeDetails(ctx context.Context, id string, patch entity.CafeUpdate) (*entity.Cafe, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.cafes {
		if r.store.cafes[i].ID != id {
			continue
		}
		if patch.Name != nil {
			r.store.cafes[i].Name = *patch.Name
		}
		if patch.Location != nil {
			r.store.cafes[i].Location = *patch.Location
		}
		if patch.Address != nil {
			r.store.cafes[i].Address = patch.Address
		}
		if patch.Photo != nil {
			r.store.cafes[i].Photo = patch.Photo
		}
		cafe := r.store.cafes[i]
		return &cafe, nil
	}
	return nil, entity.ErrNotFound
}
