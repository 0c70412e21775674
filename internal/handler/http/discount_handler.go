package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// DiscountHandlerInterface defines the methods for the discount handler to allow interface-based dependency injection (for testing/mocking)
type DiscountHandlerInterface interface {
	ListDiscounts(*gin.Context)
	CreateDiscount(*gin.Context)
	UpdateDiscount(*gin.Context)
	DeleteDiscount(*gin.Context)
}

// Ensure DiscountHandler implements DiscountHandlerInterface
var _ DiscountHandlerInterface = (*DiscountHandler)(nil)

type DiscountHandler struct {
	discountUsecase usecasecontract.IDiscountUseCase
}

func NewDiscountHandler(discountUsecase usecasecontract.IDiscountUseCase) *DiscountHandler {
	return &DiscountHandler{
		discountUsecase: discountUsecase,
	}
}

// ListDiscounts returns every discount in the directory
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.discountUsecase.ListDiscounts(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	responses := make([]dto.DiscountResponse, 0, len(discounts))
	for _, discount := range discounts {
		responses = append(responses, dto.ToDiscountResponse(discount))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// CreateDiscount publishes a new discount. Cafe owners may only publish for
// their own cafe.
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateDiscountRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if !canManageCafe(user, req.CafeID) {
		ErrorHandler(c, http.StatusForbidden, "Not allowed to manage this cafe")
		return
	}

	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "valid_until must be an RFC 3339 timestamp")
		return
	}

	input := usecasecontract.CreateDiscountInput{
		CafeID:        req.CafeID,
		Percentage:    req.Percentage,
		Description:   req.Description,
		ValidUntil:    validUntil,
		ApplicableFor: toRoles(req.ApplicableFor),
	}
	discount, err := h.discountUsecase.CreateDiscount(c.Request.Context(), input)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToDiscountResponse(*discount))
}

// UpdateDiscount edits a discount. Absent fields are left untouched.
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	discountID := c.Param("id")

	existing, err := h.discountUsecase.GetDiscount(c.Request.Context(), discountID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	if !canManageCafe(user, existing.CafeID) {
		ErrorHandler(c, http.StatusForbidden, "Not allowed to manage this cafe")
		return
	}

	var req dto.UpdateDiscountRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	patch := entity.DiscountUpdate{
		Percentage:    req.Percentage,
		Description:   req.Description,
		ApplicableFor: toRoles(req.ApplicableFor),
		IsActive:      req.IsActive,
	}
	if req.ValidUntil != nil {
		validUntil, err := time.Parse(time.RFC3339, *req.ValidUntil)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "valid_until must be an RFC 3339 timestamp")
			return
		}
		patch.ValidUntil = &validUntil
	}

	discount, err := h.discountUsecase.UpdateDiscount(c.Request.Context(), discountID, patch)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToDiscountResponse(*discount))
}

// DeleteDiscount removes a discount. Deleting an absent discount still
// succeeds for admins; cafe owners need the discount to resolve ownership.
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	discountID := c.Param("id")

	if user.Role != entity.UserRoleAdmin {
		existing, err := h.discountUsecase.GetDiscount(c.Request.Context(), discountID)
		if err != nil {
			DomainErrorHandler(c, err)
			return
		}
		if !canManageCafe(user, existing.CafeID) {
			ErrorHandler(c, http.StatusForbidden, "Not allowed to manage this cafe")
			return
		}
	}

	if err := h.discountUsecase.DeleteDiscount(c.Request.Context(), discountID); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Discount deleted")
}

func toRoles(raw []string) []entity.UserRole {
	if len(raw) == 0 {
		return nil
	}
	roles := make([]entity.UserRole, 0, len(raw))
	for _, r := range raw {
		roles = append(roles, entity.UserRole(r))
	}
	return roles
}
