package contract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// ICafeCache defines caching operations for the cafe directory listing.
type ICafeCache interface {
	GetCafeList(ctx context.Context) ([]entity.Cafe, bool, error)
	SetCafeList(ctx context.Context, cafes []entity.Cafe) error
	// InvalidateCafeList drops the cached listing after any cafe mutation.
	InvalidateCafeList(ctx context.Context) error
}
