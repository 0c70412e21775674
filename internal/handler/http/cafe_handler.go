package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// CafeHandlerInterface defines the methods for the cafe handler to allow interface-based dependency injection (for testing/mocking)
type CafeHandlerInterface interface {
	ListCafes(*gin.Context)
	GetCafe(*gin.Context)
	SetMood(*gin.Context)
	UpdateDetails(*gin.Context)
	ListCafeDiscounts(*gin.Context)
	GetEligibleDiscount(*gin.Context)
}

// Ensure CafeHandler implements CafeHandlerInterface
var _ CafeHandlerInterface = (*CafeHandler)(nil)

type CafeHandler struct {
	directoryUsecase usecasecontract.IDirectoryUseCase
	discountUsecase  usecasecontract.IDiscountUseCase
}

func NewCafeHandler(directoryUsecase usecasecontract.IDirectoryUseCase, discountUsecase usecasecontract.IDiscountUseCase) *CafeHandler {
	return &CafeHandler{
		directoryUsecase: directoryUsecase,
		discountUsecase:  discountUsecase,
	}
}

// ListCafes returns every approved cafe
func (h *CafeHandler) ListCafes(c *gin.Context) {
	cafes, err := h.directoryUsecase.ListCafes(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	responses := make([]dto.CafeResponse, 0, len(cafes))
	for _, cafe := range cafes {
		responses = append(responses, dto.ToCafeResponse(cafe))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// GetCafe returns a single cafe by ID
func (h *CafeHandler) GetCafe(c *gin.Context) {
	cafe, err := h.directoryUsecase.GetCafe(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	if cafe == nil {
		ErrorHandler(c, http.StatusNotFound, "Cafe not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCafeResponse(*cafe))
}

// SetMood updates a cafe's crowd level. Cafe owners may only update their
// own cafe.
func (h *CafeHandler) SetMood(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	cafeID := c.Param("id")
	if !canManageCafe(user, cafeID) {
		ErrorHandler(c, http.StatusForbidden, "Not allowed to manage this cafe")
		return
	}

	var req dto.SetMoodRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	cafe, err := h.directoryUsecase.SetCafeMood(c.Request.Context(), cafeID, entity.Mood(req.Mood))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCafeResponse(*cafe))
}

// UpdateDetails edits a cafe's profile fields. Cafe owners may only edit
// their own cafe.
func (h *CafeHandler) UpdateDetails(c *gin.Context) {
	user, ok := AuthenticatedUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	cafeID := c.Param("id")
	if !canManageCafe(user, cafeID) {
		ErrorHandler(c, http.StatusForbidden, "Not allowed to manage this cafe")
		return
	}

	var req dto.UpdateCafeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	patch := entity.CafeUpdate{
		Name:     req.Name,
		Location: req.Location,
		Address:  req.Address,
		Photo:    req.Photo,
	}
	cafe, err := h.directoryUsecase.UpdateCafeDetails(c.Request.Context(), cafeID, patch)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCafeResponse(*cafe))
}

// ListCafeDiscounts returns every discount a cafe has published
func (h *CafeHandler) ListCafeDiscounts(c *gin.Context) {
	discounts, err := h.discountUsecase.ListDiscountsForCafe(c.Request.Context(), c.Param("id"))
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

// GetEligibleDiscount returns the cafe's first active discount, narrowed by
// ?role= when given. A cafe with no matching discount yields a null body.
func (h *CafeHandler) GetEligibleDiscount(c *gin.Context) {
	var role *entity.UserRole
	if raw := c.Query("role"); raw != "" {
		parsed := entity.UserRole(raw)
		if !parsed.CanRedeemDiscounts() {
			ErrorHandler(c, http.StatusBadRequest, "role filter must be a redeemable role")
			return
		}
		role = &parsed
	}

	discount, err := h.discountUsecase.GetEligibleDiscount(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	if discount == nil {
		SuccessHandler(c, http.StatusOK, nil)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToDiscountResponse(*discount))
}
