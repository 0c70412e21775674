package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// DirectoryUsecase implements the IDirectoryUseCase interface: the cafe
// directory and the pending-request approval flow.
type DirectoryUsecase struct {
	pendingRepo   contract.IPendingCafeRepository
	cafeRepo      contract.ICafeRepository
	userRepo      contract.IUserRepository
	transactor    contract.ITransactor
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	notifier      usecasecontract.IChangeNotifier
	cafeCache     contract.ICafeCache
}

// NewDirectoryUsecase creates a new DirectoryUsecase instance.
func NewDirectoryUsecase(
	pendingRepo contract.IPendingCafeRepository,
	cafeRepo contract.ICafeRepository,
	userRepo contract.IUserRepository,
	transactor contract.ITransactor,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	notifier usecasecontract.IChangeNotifier,
) *DirectoryUsecase {
	return &DirectoryUsecase{
		pendingRepo:   pendingRepo,
		cafeRepo:      cafeRepo,
		userRepo:      userRepo,
		transactor:    transactor,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		notifier:      notifier,
	}
}

var _ usecasecontract.IDirectoryUseCase = (*DirectoryUsecase)(nil)

// SetCafeCache attaches an optional directory cache. When set, ListCafes is
// served from the cache and every cafe mutation invalidates it.
func (uc *DirectoryUsecase) SetCafeCache(cache contract.ICafeCache) {
	uc.cafeCache = cache
}

// ListPendingCafes returns every outstanding cafe request.
func (uc *DirectoryUsecase) ListPendingCafes(ctx context.Context) ([]entity.PendingCafeRequest, error) {
	return uc.pendingRepo.ListPendingCafes(ctx)
}

// PendingCafeForUser returns the outstanding request of a cafe-role user,
// or nil when the user has none.
func (uc *DirectoryUsecase) PendingCafeForUser(ctx context.Context, userID string) (*entity.PendingCafeRequest, error) {
	pending, err := uc.pendingRepo.GetPendingCafeByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return pending, nil
}

// ApproveCafeRequest converts a pending request into a live cafe. The three
// steps (create cafe, set the owner's cafe id, remove the request) run as
// one atomic unit; a failure in any step leaves no partial state behind.
func (uc *DirectoryUsecase) ApproveCafeRequest(ctx context.Context, pendingID string) (*entity.Cafe, error) {
	pending, err := uc.pendingRepo.GetPendingCafeByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}

	cafe := &entity.Cafe{
		ID:          uc.uuidGenerator.NewUUID(),
		Name:        pending.Name,
		Photo:       pending.Photo,
		Location:    pending.Location,
		Address:     pending.Address,
		CurrentMood: entity.MoodCalm,
		OwnerID:     pending.UserID,
		CreatedAt:   time.Now(),
	}

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.cafeRepo.CreateCafe(ctx, cafe); err != nil {
			return err
		}
		if err := uc.userRepo.SetUserCafeID(ctx, pending.UserID, cafe.ID); err != nil {
			return err
		}
		return uc.pendingRepo.DeletePendingCafe(ctx, pending.ID)
	})
	if err != nil {
		uc.logger.Errorf("failed to approve cafe request %s: %v", pendingID, err)
		return nil, fmt.Errorf("failed to approve cafe request")
	}

	uc.invalidateCafeList(ctx)
	uc.notifier.NotifyChanged("cafes", cafe.ID)
	uc.notifier.NotifyChanged("pending_cafes", pending.ID)
	uc.notifier.NotifyChanged("users", pending.UserID)

	return cafe, nil
}

// RejectCafeRequest deletes the request outright. The reason is accepted for
// the admin UI but not persisted, and rejecting an absent request is a no-op.
func (uc *DirectoryUsecase) RejectCafeRequest(ctx context.Context, pendingID, reason string) error {
	if reason != "" {
		uc.logger.Infof("cafe request %s rejected: %s", pendingID, reason)
	}
	if err := uc.pendingRepo.DeletePendingCafe(ctx, pendingID); err != nil {
		uc.logger.Errorf("failed to reject cafe request %s: %v", pendingID, err)
		return fmt.Errorf("failed to reject cafe request")
	}
	uc.notifier.NotifyChanged("pending_cafes", pendingID)
	return nil
}

// ListCafes returns the full cafe directory, served from the cache when one
// is attached.
func (uc *DirectoryUsecase) ListCafes(ctx context.Context) ([]entity.Cafe, error) {
	if uc.cafeCache != nil {
		cafes, hit, err := uc.cafeCache.GetCafeList(ctx)
		if err != nil {
			uc.logger.Warnf("cafe cache read failed: %v", err)
		} else if hit {
			return cafes, nil
		}
	}

	cafes, err := uc.cafeRepo.ListCafes(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cafeCache != nil {
		if err := uc.cafeCache.SetCafeList(ctx, cafes); err != nil {
			uc.logger.Warnf("cafe cache write failed: %v", err)
		}
	}
	return cafes, nil
}

// GetCafe returns nil without an error when the cafe does not exist.
func (uc *DirectoryUsecase) GetCafe(ctx context.Context, cafeID string) (*entity.Cafe, error) {
	cafe, err := uc.cafeRepo.GetCafeByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cafe, nil
}

// SetCafeMood updates the cafe's self-reported crowd level.
func (uc *DirectoryUsecase) SetCafeMood(ctx context.Context, cafeID string, mood entity.Mood) (*entity.Cafe, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidMood, mood)
	}

	cafe, err := uc.cafeRepo.UpdateCafeMood(ctx, cafeID, mood)
	if err != nil {
		return nil, err
	}

	uc.invalidateCafeList(ctx)
	uc.notifier.NotifyChanged("cafes", cafeID)
	return cafe, nil
}

// UpdateCafeDetails applies a typed patch to the cafe's display fields.
func (uc *DirectoryUsecase) UpdateCafeDetails(ctx context.Context, cafeID string, patch entity.CafeUpdate) (*entity.Cafe, error) {
	cafe, err := uc.cafeRepo.UpdateCafeDetails(ctx, cafeID, patch)
	if err != nil {
		return nil, err
	}

	uc.invalidateCafeList(ctx)
	uc.notifier.NotifyChanged("cafes", cafeID)
	return cafe, nil
}

func (uc *DirectoryUsecase) invalidateCafeList(ctx context.Context) {
	if uc.cafeCache == nil {
		return
	}
	if err := uc.cafeCache.InvalidateCafeList(ctx); err != nil {
		uc.logger.Warnf("cafe cache invalidation failed: %v", err)
	}
}
