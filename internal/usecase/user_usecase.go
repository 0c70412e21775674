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

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	pendingRepo   contract.IPendingCafeRepository
	tokenRepo     contract.ITokenRepository
	transactor    contract.ITransactor
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	notifier      usecasecontract.IChangeNotifier
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	pendingRepo contract.IPendingCafeRepository,
	tokenRepo contract.ITokenRepository,
	transactor contract.ITransactor,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	notifier usecasecontract.IChangeNotifier,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		pendingRepo:   pendingRepo,
		tokenRepo:     tokenRepo,
		transactor:    transactor,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		notifier:      notifier,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// sanitized returns a copy of the user with the credential hash stripped.
// Users returned by the usecase never carry credentials.
func sanitized(user *entity.User) *entity.User {
	clean := *user
	clean.PasswordHash = ""
	return &clean
}

// Register handles account signup. For role=cafe the user and their pending
// cafe request are created as one atomic unit.
func (uc *UserUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(input.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entity.ErrValidation, input.Role)
	}

	hashedPassword, err := uc.hasher.HashPassword(input.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	// Verification applies only to student/staff; it stays nil for
	// cafe/admin and never transitions for them.
	var verified *bool
	if input.Role.RequiresVerification() {
		v := false
		verified = &v
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         input.Role,
		CafeID:       nil,
		Verified:     verified,
		IDNumber:     optional(input.IDNumber),
		IDPhoto:      optional(input.IDPhoto),
		CreatedAt:    time.Now(),
	}

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			return err
		}
		if input.Role != entity.UserRoleCafe {
			return nil
		}
		// A cafe signup files its approval request immediately. The cafe
		// name falls back to the account name when not provided.
		cafeName := input.CafeName
		if cafeName == "" {
			cafeName = input.Name
		}
		pending := &entity.PendingCafeRequest{
			ID:        uc.uuidGenerator.NewUUID(),
			UserID:    user.ID,
			Name:      cafeName,
			Photo:     optional(input.CafePhoto),
			Location:  input.CafeLocation,
			Address:   optional(input.CafeAddress),
			Status:    entity.PendingCafeStatusPending,
			CreatedAt: time.Now(),
		}
		return uc.pendingRepo.CreatePendingCafe(ctx, pending)
	})
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, entity.ErrDuplicateEmail
		}
		uc.logger.Errorf("failed to register user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	uc.notifier.NotifyChanged("users", user.ID)
	if input.Role == entity.UserRoleCafe {
		uc.notifier.NotifyChanged("pending_cafes", user.ID)
	}

	return sanitized(user), nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", fmt.Errorf("internal server error")
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", entity.ErrInvalidCredentials
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", fmt.Errorf("failed to generate token")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", fmt.Errorf("failed to generate token")
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: time.Now().Add(uc.config.GetRefreshTokenExpiry()),
		CreatedAt: time.Now(),
		Revoke:    false,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return nil, "", "", fmt.Errorf("failed to store token")
	}

	return sanitized(user), accessToken, refreshToken, nil
}

// Authenticate resolves an access token into its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, fmt.Errorf("internal server error")
	}

	return sanitized(user), nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	storedToken, err := uc.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", "", fmt.Errorf("refresh token not found or invalidated, please log in again")
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", fmt.Errorf("internal server error")
	}

	if storedToken.Revoke {
		return "", "", fmt.Errorf("refresh token has been revoked, please log in again")
	}

	if !uc.hasher.CheckHash(refreshToken, storedToken.TokenHash) {
		uc.logger.Warnf("refresh token mismatch for user %s", claims.UserID)
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", fmt.Errorf("invalid refresh token")
	}

	if storedToken.ExpiresAt.Before(time.Now()) {
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", fmt.Errorf("refresh token expired, please log in again")
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", fmt.Errorf("user no longer exists")
	}

	newAccessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new access token during refresh: %v", err)
		return "", "", fmt.Errorf("failed to generate new access token")
	}

	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate new refresh token during refresh: %v", err)
		return "", "", fmt.Errorf("failed to generate new refresh token")
	}

	err = uc.tokenRepo.UpdateToken(ctx, storedToken.ID, uc.hasher.HashString(newRefreshToken), time.Now().Add(uc.config.GetRefreshTokenExpiry()))
	if err != nil {
		uc.logger.Errorf("failed to update refresh token: %v", err)
		return "", "", fmt.Errorf("failed to update token")
	}

	return newAccessToken, newRefreshToken, nil
}

// Logout revokes the stored refresh token. Ending a session that no longer
// exists is not an error.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil
	}

	storedToken, err := uc.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		return nil
	}

	if err := uc.tokenRepo.RevokeToken(ctx, storedToken.ID); err != nil {
		uc.logger.Errorf("failed to revoke refresh token for user %s: %v", claims.UserID, err)
		return fmt.Errorf("failed to end session")
	}
	return nil
}

// GetUserByID returns the user without credentials.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sanitized(user), nil
}

// ListUsers returns all users, optionally narrowed by role and verification
// status for the admin review screens.
func (uc *UserUsecase) ListUsers(ctx context.Context, filter usecasecontract.UserListFilter) ([]entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users")
	}

	result := make([]entity.User, 0, len(users))
	for _, user := range users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.Verified != nil {
			if user.Verified == nil || *user.Verified != *filter.Verified {
				continue
			}
		}
		user.PasswordHash = ""
		result = append(result, user)
	}
	return result, nil
}

// VerifyUser marks a student/staff account verified.
func (uc *UserUsecase) VerifyUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.SetUserVerified(ctx, userID)
	if err != nil {
		return nil, err
	}
	uc.notifier.NotifyChanged("users", userID)
	return sanitized(user), nil
}

// RejectUser deletes the account outright; no audit trail is kept.
func (uc *UserUsecase) RejectUser(ctx context.Context, userID string) error {
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return fmt.Errorf("failed to reject user")
	}
	uc.notifier.NotifyChanged("users", userID)
	return nil
}

// optional maps an empty string to nil, matching how optional signup fields
// are stored.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
