package mocks

import (
	"context"
	"errors"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// MockDiscountUsecase is a mock implementation of the discount usecase
// interface
type MockDiscountUsecase struct {
	// Control mock behavior
	ShouldFailList   bool
	ShouldFailCreate bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	ShouldFailGet    bool
	InvalidInput     bool

	// Return values; a nil MockDiscount yields the "absent" behavior for
	// GetEligibleDiscount
	MockDiscount  *entity.Discount
	MockDiscounts []entity.Discount
	MockHasActive bool

	// Captured arguments
	LastCreateInput   usecasecontract.CreateDiscountInput
	LastUpdatePatch   entity.DiscountUpdate
	DeletedDiscountID string
	LastEligibleRole  *entity.UserRole
}

// Ensure MockDiscountUsecase implements the correct interface for the
// handlers
var _ usecasecontract.IDiscountUseCase = (*MockDiscountUsecase)(nil)

func NewMockDiscountUsecase() *MockDiscountUsecase {
	return &MockDiscountUsecase{}
}

func (m *MockDiscountUsecase) ListDiscounts(ctx context.Context) ([]entity.Discount, error) {
	if m.ShouldFailList {
		return nil, errors.New("list discounts failed")
	}
	return m.MockDiscounts, nil
}

func (m *MockDiscountUsecase) ListDiscountsForCafe(ctx context.Context, cafeID string) ([]entity.Discount, error) {
	if m.ShouldFailList {
		return nil, errors.New("list discounts failed")
	}
	return m.MockDiscounts, nil
}

func (m *MockDiscountUsecase) GetDiscount(ctx context.Context, discountID string) (*entity.Discount, error) {
	if m.ShouldFailGet || m.MockDiscount == nil {
		return nil, entity.ErrNotFound
	}
	return m.MockDiscount, nil
}

func (m *MockDiscountUsecase) CreateDiscount(ctx context.Context, input usecasecontract.CreateDiscountInput) (*entity.Discount, error) {
	m.LastCreateInput = input
	if m.InvalidInput {
		return nil, entity.ErrValidation
	}
	if m.ShouldFailCreate {
		return nil, errors.New("create discount failed")
	}
	return m.MockDiscount, nil
}

func (m *MockDiscountUsecase) UpdateDiscount(ctx context.Context, discountID string, patch entity.DiscountUpdate) (*entity.Discount, error) {
	m.LastUpdatePatch = patch
	if m.InvalidInput {
		return nil, entity.ErrValidation
	}
	if m.ShouldFailUpdate {
		return nil, entity.ErrNotFound
	}
	return m.MockDiscount, nil
}

func (m *MockDiscountUsecase) DeleteDiscount(ctx context.Context, discountID string) error {
	m.DeletedDiscountID = discountID
	if m.ShouldFailDelete {
		return errors.New("delete discount failed")
	}
	return nil
}

func (m *MockDiscountUsecase) GetEligibleDiscount(ctx context.Context, cafeID string, role *entity.UserRole) (*entity.Discount, error) {
	m.LastEligibleRole = role
	return m.MockDiscount, nil
}

func (m *MockDiscountUsecase) CafeHasEligibleDiscount(ctx context.Context, cafeID string) (bool, error) {
	return m.MockHasActive, nil
}
