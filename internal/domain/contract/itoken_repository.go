package contract

import (
	"context"
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type ITokenRepository interface {
	CreateToken(ctx context.Context, token *entity.Token) error
	// GetTokenByUserID retrieves the stored refresh token for a user.
	// Returns entity.ErrNotFound when absent.
	GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error)
	// UpdateToken replaces the token hash and expiry after a refresh.
	UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	// RevokeToken marks a token revoked. Revoking an absent token is a
	// no-op.
	RevokeToken(ctx context.Context, id string) error
}
