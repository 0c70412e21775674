package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	handler "github.com/PurpleArcher2/discounts-app/internal/handler/http"
	dto "github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
	mocks "github.com/PurpleArcher2/discounts-app/internal/handler/http/mocks"
)

func setupDiscountRouter(discountUC *mocks.MockDiscountUsecase, user *entity.User) *gin.Engine {
	h := handler.NewDiscountHandler(discountUC)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(injectUser(user))
	protected.POST("/discounts", h.CreateDiscount)
	protected.PATCH("/discounts/:id", h.UpdateDiscount)
	protected.DELETE("/discounts/:id", h.DeleteDiscount)
	protected.GET("/discounts", h.ListDiscounts)
	return r
}

func testDiscount() *entity.Discount {
	return &entity.Discount{
		ID:            "d1",
		CafeID:        "c1",
		Percentage:    20,
		Description:   "student special",
		ValidUntil:    time.Now().Add(24 * time.Hour),
		ApplicableFor: []entity.UserRole{entity.UserRoleStudent, entity.UserRoleStaff},
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
}

func TestCreateDiscount(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.MockDiscount = testDiscount()
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	w := httptest.NewRecorder()
	req := newJSONRequest("POST", "/discounts", dto.CreateDiscountRequest{
		CafeID:     "c1",
		Percentage: 20,
		ValidUntil: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "c1", mockDiscounts.LastCreateInput.CafeID)
	assert.Equal(t, 20, mockDiscounts.LastCreateInput.Percentage)
}

func TestCreateDiscount_OtherCafeForbidden(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.MockDiscount = testDiscount()
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	w := httptest.NewRecorder()
	req := newJSONRequest("POST", "/discounts", dto.CreateDiscountRequest{
		CafeID:     "c2",
		Percentage: 20,
		ValidUntil: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateDiscount_InvalidPercentage(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.InvalidInput = true
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	w := httptest.NewRecorder()
	req := newJSONRequest("POST", "/discounts", dto.CreateDiscountRequest{
		CafeID:     "c1",
		Percentage: 150,
		ValidUntil: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateDiscount_BadTimestamp(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	w := httptest.NewRecorder()
	req := newJSONRequest("POST", "/discounts", dto.CreateDiscountRequest{
		CafeID:     "c1",
		Percentage: 20,
		ValidUntil: "next tuesday",
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDiscount_BadApplicableForRole(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	w := httptest.NewRecorder()
	req := newJSONRequest("POST", "/discounts", dto.CreateDiscountRequest{
		CafeID:        "c1",
		Percentage:    20,
		ValidUntil:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		ApplicableFor: []string{"cafe"},
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "redeemrole")
}

func TestUpdateDiscount(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.MockDiscount = testDiscount()
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	percentage := 30
	w := httptest.NewRecorder()
	req := newJSONRequest("PATCH", "/discounts/d1", dto.UpdateDiscountRequest{Percentage: &percentage})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockDiscounts.LastUpdatePatch.Percentage) {
		assert.Equal(t, 30, *mockDiscounts.LastUpdatePatch.Percentage)
	}
	assert.Nil(t, mockDiscounts.LastUpdatePatch.ValidUntil)
}

func TestUpdateDiscount_NotOwner(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.MockDiscount = testDiscount()
	otherCafe := "c2"
	stranger := &entity.User{ID: "u9", Role: entity.UserRoleCafe, CafeID: &otherCafe}
	r := setupDiscountRouter(mockDiscounts, stranger)

	percentage := 30
	w := httptest.NewRecorder()
	req := newJSONRequest("PATCH", "/discounts/d1", dto.UpdateDiscountRequest{Percentage: &percentage})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteDiscount_AdminIdempotent(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	admin := &entity.User{ID: "a1", Role: entity.UserRoleAdmin}
	r := setupDiscountRouter(mockDiscounts, admin)

	// no such discount exists, admins still get a success
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/discounts/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "missing", mockDiscounts.DeletedDiscountID)
}

func TestDeleteDiscount_Owner(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.MockDiscount = testDiscount()
	r := setupDiscountRouter(mockDiscounts, cafeOwner())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/discounts/d1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "d1", mockDiscounts.DeletedDiscountID)
}
