package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	RefreshToken(*gin.Context)
	Logout(*gin.Context)
	GetCurrentUser(*gin.Context)
	GetMyPendingCafe(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	userUsecase      usecasecontract.IUserUseCase
	directoryUsecase usecasecontract.IDirectoryUseCase
}

func NewAuthHandler(userUsecase usecasecontract.IUserUseCase, directoryUsecase usecasecontract.IDirectoryUseCase) *AuthHandler {
	return &AuthHandler{
		userUsecase:      userUsecase,
		directoryUsecase: directoryUsecase,
	}
}

// Register handles account creation (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecasecontract.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Role:         entity.UserRole(req.Role),
		IDNumber:     deref(req.IDNumber),
		IDPhoto:      deref(req.IDPhoto),
		CafeName:     deref(req.CafeName),
		CafeLocation: deref(req.CafeLocation),
		CafeAddress:  deref(req.CafeAddress),
		CafePhoto:    deref(req.CafePhoto),
	}
	user, err := h.userUsecase.Register(c.Request.Context(), input)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response := dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	SuccessHandler(c, http.StatusOK, response)
}

// RefreshToken handles token rotation
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout ends the session. Ending an absent session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// GetCurrentUser returns the authenticated account
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetMyPendingCafe returns the caller's outstanding cafe request, if any
func (h *AuthHandler) GetMyPendingCafe(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pending, err := h.directoryUsecase.PendingCafeForUser(c.Request.Context(), user.ID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	if pending == nil {
		SuccessHandler(c, http.StatusOK, nil)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPendingCafeResponse(*pending))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
