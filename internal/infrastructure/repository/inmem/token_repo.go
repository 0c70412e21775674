package inmem

import (
	"context"
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type TokenRepository struct {
	store *Store
}

func NewTokenRepository(store *Store) *TokenRepository {
	return &TokenRepository{store: store}
}

var _ contract.ITokenRepository = (*TokenRepository)(nil)

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	r.store.tokens = append(r.store.tokens, *token)
	return nil
}

// GetTokenByUserID returns the newest refresh token for the user.
func (r *TokenRepository) GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := len(r.store.tokens) - 1; i >= 0; i-- {
		t := r.store.tokens[i]
		if t.UserID == userID && t.TokenType == entity.TokenTypeRefresh {
			return &t, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *TokenRepository) UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.tokens {
		if r.store.tokens[i].ID == id {
			r.store.tokens[i].TokenHash = tokenHash
			r.store.tokens[i].ExpiresAt = expiresAt
			r.store.tokens[i].Revoke = false
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	// Idempotent: revoking an absent token is a no-op.
	for i := range r.store.tokens {
		if r.store.tokens[i].ID == id {
			r.store.tokens[i].Revoke = true
			return nil
		}
	}
	return nil
}
