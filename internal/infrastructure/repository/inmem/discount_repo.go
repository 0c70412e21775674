package inmem

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type DiscountRepository struct {
	store *Store
}

func NewDiscountRepository(store *Store) *DiscountRepository {
	return &DiscountRepository{store: store}
}

var _ contract.IDiscountRepository = (*DiscountRepository)(nil)

func (r *DiscountRepository) CreateDiscount(ctx context.Context, discount *entity.Discount) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	r.store.discounts = append(r.store.discounts, *discount)
	return nil
}

func (r *DiscountRepository) GetDiscountByID(ctx context.Context, id string) (*entity.Discount, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := range r.store.discounts {
		if r.store.discounts[i].ID == id {
			discount := r.store.discounts[i]
			return &discount, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *DiscountRepository) ListDiscounts(ctx context.Context) ([]entity.Discount, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	return append([]entity.Discount(nil), r.store.discounts...), nil
}

// ListDiscountsByCafe returns the cafe's discounts in insertion order; the
// eligibility tie-break relies on it.
func (r *DiscountRepository) ListDiscountsByCafe(ctx context.Context, cafeID string) ([]entity.Discount, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	discounts := []entity.Discount{}
	for i := range r.store.discounts {
		if r.store.discounts[i].CafeID == cafeID {
			discounts = append(discounts, r.store.discounts[i])
		}
	}
	return discounts, nil
}

func (r *DiscountRepository) UpdateDiscount(ctx context.Context, id string, patch entity.DiscountUpdate) (*entity.Discount, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.discounts {
		if r.store.discounts[i].ID != id {
			continue
		}
		if patch.Percentage != nil {
			r.store.discounts[i].Percentage = *patch.Percentage
		}
		if patch.Description != nil {
			r.store.discounts[i].Description = *patch.Description
		}
		if patch.ValidUntil != nil {
			r.store.discounts[i].ValidUntil = *patch.ValidUntil
		}
		if patch.ApplicableFor != nil {
			r.store.discounts[i].ApplicableFor = patch.ApplicableFor
		}
		if patch.IsActive != nil {
			r.store.discounts[i].IsActive = *patch.IsActive
		}
		discount := r.store.discounts[i]
		return &discount, nil
	}
	return nil, entity.ErrNotFound
}

func (r *DiscountRepository) DeleteDiscount(ctx context.Context, id string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	// Idempotent: deleting an absent discount is a no-op.
	discounts := r.store.discounts[:0]
	for i := range r.store.discounts {
		if r.store.discounts[i].ID != id {
			discounts = append(discounts, r.store.discounts[i])
		}
	}
	r.store.discounts = discounts
	return nil
}
