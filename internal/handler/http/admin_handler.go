package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for the admin handler to allow interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	ListUsers(*gin.Context)
	VerifyUser(*gin.Context)
	RejectUser(*gin.Context)
	ListPendingCafes(*gin.Context)
	ApproveCafeRequest(*gin.Context)
	RejectCafeRequest(*gin.Context)
}

// Ensure AdminHandler implements AdminHandlerInterface
var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	userUsecase      usecasecontract.IUserUseCase
	directoryUsecase usecasecontract.IDirectoryUseCase
}

func NewAdminHandler(userUsecase usecasecontract.IUserUseCase, directoryUsecase usecasecontract.IDirectoryUseCase) *AdminHandler {
	return &AdminHandler{
		userUsecase:      userUsecase,
		directoryUsecase: directoryUsecase,
	}
}

// ListUsers returns all accounts, optionally filtered by ?role= and ?verified=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter usecasecontract.UserListFilter
	if raw := c.Query("role"); raw != "" {
		role := entity.UserRole(raw)
		if !role.Valid() {
			ErrorHandler(c, http.StatusBadRequest, "unknown role filter")
			return
		}
		filter.Role = &role
	}
	if raw := c.Query("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "verified filter must be a boolean")
			return
		}
		filter.Verified = &verified
	}

	users, err := h.userUsecase.ListUsers(c.Request.Context(), filter)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.ToUserResponse(user))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// VerifyUser approves a student/staff verification request
func (h *AdminHandler) VerifyUser(c *gin.Context) {
	user, err := h.userUsecase.VerifyUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// RejectUser removes an account. Rejecting an absent account still succeeds.
func (h *AdminHandler) RejectUser(c *gin.Context) {
	if err := h.userUsecase.RejectUser(c.Request.Context(), c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User rejected")
}

// ListPendingCafes returns all outstanding cafe requests
func (h *AdminHandler) ListPendingCafes(c *gin.Context) {
	pending, err := h.directoryUsecase.ListPendingCafes(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	responses := make([]dto.PendingCafeResponse, 0, len(pending))
	for _, req := range pending {
		responses = append(responses, dto.ToPendingCafeResponse(req))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// ApproveCafeRequest turns a pending request into a listed cafe
func (h *AdminHandler) ApproveCafeRequest(c *gin.Context) {
	cafe, err := h.directoryUsecase.ApproveCafeRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCafeResponse(*cafe))
}

// RejectCafeRequest removes a pending request. Rejecting an absent request
// still succeeds.
func (h *AdminHandler) RejectCafeRequest(c *gin.Context) {
	var req dto.RejectRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.directoryUsecase.RejectCafeRequest(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Cafe request rejected")
}
