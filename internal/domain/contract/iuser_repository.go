package contract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser persists a new user. It returns entity.ErrDuplicateEmail
	// when the email is already taken; uniqueness is enforced by the
	// storage backend, not by a read-then-write check.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email. Emails are matched exactly,
	// case-sensitive as stored.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// SetUserVerified flips the verification flag to true and returns the
	// updated user. Returns entity.ErrNotFound when the user is absent.
	SetUserVerified(ctx context.Context, id string) (*entity.User, error)
	// SetUserCafeID assigns the cafe owned by the user. Set exactly once,
	// when the user's pending cafe request is approved.
	SetUserCafeID(ctx context.Context, id, cafeID string) error
	// DeleteUser removes a user by ID. Deleting an absent user is a no-op.
	DeleteUser(ctx context.Context, id string) error
}
