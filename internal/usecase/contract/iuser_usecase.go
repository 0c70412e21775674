package usecasecontract

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// RegisterInput carries everything a signup may provide. The cafe fields are
// only meaningful for role=cafe; the identification fields only for
// student/staff.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.UserRole
	IDNumber string
	IDPhoto  string

	CafeName     string
	CafeLocation string
	CafePhoto    string
	CafeAddress  string
}

// UserListFilter narrows ListUsers for the admin review screens. Nil fields
// mean "no filter".
type UserListFilter struct {
	Role     *entity.UserRole
	Verified *bool
}

// IUserUseCase defines the interface for account and session operations.
type IUserUseCase interface {
	// Register creates a user. For role=cafe it atomically also files a
	// pending cafe request. The returned user never carries credentials.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	// Login authenticates by (email, password) and issues an access and a
	// refresh token, establishing the session.
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	// Authenticate resolves an access token into its user.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	// Logout revokes the refresh token, ending the session.
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context, filter UserListFilter) ([]entity.User, error)
	// VerifyUser marks a student/staff account verified.
	VerifyUser(ctx context.Context, userID string) (*entity.User, error)
	// RejectUser deletes the account outright. Rejecting an absent user is
	// a no-op.
	RejectUser(ctx context.Context, userID string) error
}
