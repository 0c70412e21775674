package contract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type ICafeRepository interface {
	CreateCafe(ctx context.Context, cafe *entity.Cafe) error
	// GetCafeByID retrieves a cafe. Returns entity.ErrNotFound when absent.
	GetCafeByID(ctx context.Context, id string) (*entity.Cafe, error)
	// ListCafes returns all cafes in insertion order.
	ListCafes(ctx context.Context) ([]entity.Cafe, error)
	// UpdateCafeMood sets the cafe's current mood and returns the updated
	// cafe. The mood is validated by the usecase before it reaches here.
	UpdateCafeMood(ctx context.Context, id string, mood entity.Mood) (*entity.Cafe, error)
	// UpdateCafeDetails applies the typed patch and returns the updated
	// cafe. Returns entity.ErrNotFound when absent.
	UpdateCafeDetails(ctx context.Context, id string, patch entity.CafeUpdate) (*entity.Cafe, error)
}
