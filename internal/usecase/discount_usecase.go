package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// DiscountUsecase implements the IDiscountUseCase interface.
type DiscountUsecase struct {
	discountRepo  contract.IDiscountRepository
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	notifier      usecasecontract.IChangeNotifier
}

// NewDiscountUsecase creates a new DiscountUsecase instance.
func NewDiscountUsecase(
	discountRepo contract.IDiscountRepository,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	notifier usecasecontract.IChangeNotifier,
) *DiscountUsecase {
	return &DiscountUsecase{
		discountRepo:  discountRepo,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		notifier:      notifier,
	}
}

var _ usecasecontract.IDiscountUseCase = (*DiscountUsecase)(nil)

// ListDiscounts returns every discount across all cafes.
func (uc *DiscountUsecase) ListDiscounts(ctx context.Context) ([]entity.Discount, error) {
	return uc.discountRepo.ListDiscounts(ctx)
}

// ListDiscountsForCafe returns the cafe's discounts in insertion order.
func (uc *DiscountUsecase) ListDiscountsForCafe(ctx context.Context, cafeID string) ([]entity.Discount, error) {
	return uc.discountRepo.ListDiscountsByCafe(ctx, cafeID)
}

// GetDiscount retrieves a discount by ID.
func (uc *DiscountUsecase) GetDiscount(ctx context.Context, discountID string) (*entity.Discount, error) {
	return uc.discountRepo.GetDiscountByID(ctx, discountID)
}

// CreateDiscount validates and persists a new discount. An empty
// applicable-for set is normalized to every redeemable role.
func (uc *DiscountUsecase) CreateDiscount(ctx context.Context, input usecasecontract.CreateDiscountInput) (*entity.Discount, error) {
	if err := uc.validator.ValidatePercentage(input.Percentage); err != nil {
		return nil, err
	}
	if input.ValidUntil.IsZero() {
		return nil, fmt.Errorf("%w: valid_until is required", entity.ErrValidation)
	}

	applicableFor := normalizeApplicableFor(input.ApplicableFor)
	if err := uc.validator.ValidateApplicableFor(applicableFor); err != nil {
		return nil, err
	}

	discount := &entity.Discount{
		ID:            uc.uuidGenerator.NewUUID(),
		CafeID:        input.CafeID,
		Percentage:    input.Percentage,
		Description:   input.Description,
		ValidUntil:    input.ValidUntil,
		ApplicableFor: applicableFor,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	if err := uc.discountRepo.CreateDiscount(ctx, discount); err != nil {
		uc.logger.Errorf("failed to create discount for cafe %s: %v", input.CafeID, err)
		return nil, fmt.Errorf("failed to create discount")
	}

	uc.notifier.NotifyChanged("discounts", discount.ID)
	return discount, nil
}

// UpdateDiscount applies a typed patch, re-normalizing the applicable-for
// set when the patch carries one.
func (uc *DiscountUsecase) UpdateDiscount(ctx context.Context, discountID string, patch entity.DiscountUpdate) (*entity.Discount, error) {
	if patch.Percentage != nil {
		if err := uc.validator.ValidatePercentage(*patch.Percentage); err != nil {
			return nil, err
		}
	}
	if patch.ApplicableFor != nil {
		patch.ApplicableFor = normalizeApplicableFor(patch.ApplicableFor)
		if err := uc.validator.ValidateApplicableFor(patch.ApplicableFor); err != nil {
			return nil, err
		}
	}

	discount, err := uc.discountRepo.UpdateDiscount(ctx, discountID, patch)
	if err != nil {
		return nil, err
	}

	uc.notifier.NotifyChanged("discounts", discountID)
	return discount, nil
}

// DeleteDiscount removes a discount. Deleting an absent discount is a no-op.
func (uc *DiscountUsecase) DeleteDiscount(ctx context.Context, discountID string) error {
	if err := uc.discountRepo.DeleteDiscount(ctx, discountID); err != nil {
		uc.logger.Errorf("failed to delete discount %s: %v", discountID, err)
		return fmt.Errorf("failed to delete discount")
	}
	uc.notifier.NotifyChanged("discounts", discountID)
	return nil
}

// GetEligibleDiscount returns the first effectively-active discount of the
// cafe in storage order. With a role, the first whose applicable-for set
// includes it; without one, the first effectively-active discount of any
// role. Returns nil without an error when nothing matches.
func (uc *DiscountUsecase) GetEligibleDiscount(ctx context.Context, cafeID string, role *entity.UserRole) (*entity.Discount, error) {
	discounts, err := uc.discountRepo.ListDiscountsByCafe(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range discounts {
		d := &discounts[i]
		if !d.EffectivelyActive(now) {
			continue
		}
		if role != nil && !d.AppliesTo(*role) {
			continue
		}
		return d, nil
	}
	return nil, nil
}

// CafeHasEligibleDiscount reports whether any discount of the cafe is
// effectively active, regardless of role.
func (uc *DiscountUsecase) CafeHasEligibleDiscount(ctx context.Context, cafeID string) (bool, error) {
	discount, err := uc.GetEligibleDiscount(ctx, cafeID, nil)
	if err != nil {
		return false, err
	}
	return discount != nil, nil
}

// normalizeApplicableFor defaults an empty set to every redeemable role.
func normalizeApplicableFor(roles []entity.UserRole) []entity.UserRole {
	if len(roles) == 0 {
		return []entity.UserRole{entity.UserRoleStudent, entity.UserRoleStaff}
	}
	return roles
}
