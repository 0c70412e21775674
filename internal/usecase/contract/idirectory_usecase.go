package usecasecontract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// IDirectoryUseCase defines the interface for cafe and pending-request
// operations.
type IDirectoryUseCase interface {
	ListPendingCafes(ctx context.Context) ([]entity.PendingCafeRequest, error)
	// PendingCafeForUser returns the outstanding request of a cafe-role
	// user, or nil when the user has none.
	PendingCafeForUser(ctx context.Context, userID string) (*entity.PendingCafeRequest, error)
	// ApproveCafeRequest converts a pending request into a cafe as one
	// atomic unit: the cafe is created with mood Calm, the requesting
	// user's cafe id is set, and the request is removed.
	ApproveCafeRequest(ctx context.Context, pendingID string) (*entity.Cafe, error)
	// RejectCafeRequest deletes the request. The reason is accepted for
	// the admin UI but not persisted. Rejecting an absent request is a
	// no-op.
	RejectCafeRequest(ctx context.Context, pendingID, reason string) error

	ListCafes(ctx context.Context) ([]entity.Cafe, error)
	// GetCafe returns nil without an error when the cafe does not exist.
	GetCafe(ctx context.Context, cafeID string) (*entity.Cafe, error)
	SetCafeMood(ctx context.Context, cafeID string, mood entity.Mood) (*entity.Cafe, error)
	UpdateCafeDetails(ctx context.Context, cafeID string, patch entity.CafeUpdate) (*entity.Cafe, error)
}
