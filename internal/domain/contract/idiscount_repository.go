package contract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type IDiscountRepository interface {
	CreateDiscount(ctx context.Context, discount *entity.Discount) error
	// GetDiscountByID retrieves a discount. Returns entity.ErrNotFound
	// when absent.
	GetDiscountByID(ctx context.Context, id string) (*entity.Discount, error)
	// ListDiscounts returns all discounts in insertion order.
	ListDiscounts(ctx context.Context) ([]entity.Discount, error)
	// ListDiscountsByCafe returns the cafe's discounts in insertion order.
	// Eligibility tie-breaks rely on this ordering.
	ListDiscountsByCafe(ctx context.Context, cafeID string) ([]entity.Discount, error)
	// UpdateDiscount applies the typed patch and returns the updated
	// discount. Returns entity.ErrNotFound when absent.
	UpdateDiscount(ctx context.Context, id string, patch entity.DiscountUpdate) (*entity.Discount, error)
	// DeleteDiscount removes a discount by ID. Deleting an absent discount
	// is a no-op.
	DeleteDiscount(ctx context.Context, id string) error
}
