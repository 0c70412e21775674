package usecasecontract

import (
	"context"
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// CreateDiscountInput carries a new discount. ApplicableFor defaults to
// every redeemable role when empty.
type CreateDiscountInput struct {
	CafeID        string
	Percentage    int
	Description   string
	ValidUntil    time.Time
	ApplicableFor []entity.UserRole
}

// IDiscountUseCase defines the interface for discount operations.
type IDiscountUseCase interface {
	ListDiscounts(ctx context.Context) ([]entity.Discount, error)
	ListDiscountsForCafe(ctx context.Context, cafeID string) ([]entity.Discount, error)
	GetDiscount(ctx context.Context, discountID string) (*entity.Discount, error)
	CreateDiscount(ctx context.Context, input CreateDiscountInput) (*entity.Discount, error)
	UpdateDiscount(ctx context.Context, discountID string, patch entity.DiscountUpdate) (*entity.Discount, error)
	// DeleteDiscount removes a discount. Deleting an absent discount is a
	// no-op.
	DeleteDiscount(ctx context.Context, discountID string) error
	// GetEligibleDiscount returns the first effectively-active discount of
	// the cafe in storage order, filtered by role when one is given. It
	// returns nil without an error when nothing matches.
	GetEligibleDiscount(ctx context.Context, cafeID string, role *entity.UserRole) (*entity.Discount, error)
	// CafeHasEligibleDiscount reports whether any discount of the cafe is
	// effectively active, regardless of role.
	CafeHasEligibleDiscount(ctx context.Context, cafeID string) (bool, error)
}
