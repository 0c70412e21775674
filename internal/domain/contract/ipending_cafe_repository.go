package contract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type IPendingCafeRepository interface {
	CreatePendingCafe(ctx context.Context, req *entity.PendingCafeRequest) error
	// GetPendingCafeByID retrieves a pending request. Returns
	// entity.ErrNotFound when absent.
	GetPendingCafeByID(ctx context.Context, id string) (*entity.PendingCafeRequest, error)
	// GetPendingCafeByUserID retrieves the outstanding request of a
	// cafe-role user, if any. Returns entity.ErrNotFound when absent.
	GetPendingCafeByUserID(ctx context.Context, userID string) (*entity.PendingCafeRequest, error)
	// ListPendingCafes returns all pending requests in insertion order.
	ListPendingCafes(ctx context.Context) ([]entity.PendingCafeRequest, error)
	// DeletePendingCafe removes a request by ID. Deleting an absent
	// request is a no-op.
	DeletePendingCafe(ctx context.Context, id string) error
}
