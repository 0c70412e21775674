package mocks

import (
	"context"
	"errors"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailAuthenticate bool
	ShouldFailRefreshToken bool
	ShouldFailLogout       bool
	ShouldFailGetByID      bool
	ShouldFailListUsers    bool
	ShouldFailVerifyUser   bool
	ShouldFailRejectUser   bool

	// Duplicate email simulation for Register
	DuplicateEmail bool

	// Return values
	MockUser         entity.User
	MockUsers        []entity.User
	MockAccessToken  string
	MockRefreshToken string

	// Captured arguments
	LastRegisterInput usecasecontract.RegisterInput
	LastListFilter    usecasecontract.UserListFilter
	RejectedUserID    string
}

// Ensure MockUserUsecase implements the correct interface for the handlers
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Email: "test@example.com",
			Name:  "Test User",
			Role:  entity.UserRoleStudent,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = input
	if m.DuplicateEmail {
		return nil, entity.ErrDuplicateEmail
	}
	if m.ShouldFailRegister {
		return nil, errors.New("registration failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("authentication failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", errors.New("refresh token failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	return nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, filter usecasecontract.UserListFilter) ([]entity.User, error) {
	m.LastListFilter = filter
	if m.ShouldFailListUsers {
		return nil, errors.New("list users failed")
	}
	return m.MockUsers, nil
}

func (m *MockUserUsecase) VerifyUser(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailVerifyUser {
		return nil, entity.ErrNotFound
	}
	user := m.MockUser
	verified := true
	user.Verified = &verified
	return &user, nil
}

func (m *MockUserUsecase) RejectUser(ctx context.Context, userID string) error {
	m.RejectedUserID = userID
	if m.ShouldFailRejectUser {
		return errors.New("reject user failed")
	}
	return nil
}
