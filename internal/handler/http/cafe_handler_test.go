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

func setupCafeRouter(h *handler.CafeHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	r.GET("/cafes", h.ListCafes)
	r.GET("/cafes/:id", h.GetCafe)
	r.GET("/cafes/:id/discounts", h.ListCafeDiscounts)
	r.GET("/cafes/:id/eligible-discount", h.GetEligibleDiscount)
	protected := r.Group("/")
	if user != nil {
		protected.Use(injectUser(user))
	}
	protected.PATCH("/cafes/:id/mood", h.SetMood)
	protected.PATCH("/cafes/:id", h.UpdateDetails)
	return r
}

func patchJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := newJSONRequest("PATCH", path, payload)
	r.ServeHTTP(w, req)
	return w
}

func testCafe() *entity.Cafe {
	return &entity.Cafe{
		ID:          "c1",
		Name:        "Corner Cafe",
		Location:    "Library Block",
		CurrentMood: entity.MoodCalm,
		OwnerID:     "u1",
		CreatedAt:   time.Now(),
	}
}

func cafeOwner() *entity.User {
	cafeID := "c1"
	return &entity.User{ID: "u1", Role: entity.UserRoleCafe, CafeID: &cafeID}
}

func TestListCafes(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafes = []entity.Cafe{*testCafe()}
	h := handler.NewCafeHandler(mockDirectory, mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cafes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corner Cafe")
}

func TestGetCafe_NotFound(t *testing.T) {
	h := handler.NewCafeHandler(mocks.NewMockDirectoryUsecase(), mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cafes/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetMood(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafe = testCafe()
	h := handler.NewCafeHandler(mockDirectory, mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, cafeOwner())

	w := patchJSON(r, "/cafes/c1/mood", dto.SetMoodRequest{Mood: "Crowded"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.MoodCrowded, mockDirectory.LastMood)
}

func TestSetMood_UnknownMood(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafe = testCafe()
	h := handler.NewCafeHandler(mockDirectory, mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, cafeOwner())

	w := patchJSON(r, "/cafes/c1/mood", dto.SetMoodRequest{Mood: "chaotic"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetMood_NotOwner(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafe = testCafe()
	otherCafe := "c2"
	stranger := &entity.User{ID: "u9", Role: entity.UserRoleCafe, CafeID: &otherCafe}
	h := handler.NewCafeHandler(mockDirectory, mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, stranger)

	w := patchJSON(r, "/cafes/c1/mood", dto.SetMoodRequest{Mood: "Calm"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetMood_AdminAllowed(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafe = testCafe()
	admin := &entity.User{ID: "a1", Role: entity.UserRoleAdmin}
	h := handler.NewCafeHandler(mockDirectory, mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, admin)

	w := patchJSON(r, "/cafes/c1/mood", dto.SetMoodRequest{Mood: "Moderate"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.MoodModerate, mockDirectory.LastMood)
}

func TestUpdateCafeDetails(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafe = testCafe()
	h := handler.NewCafeHandler(mockDirectory, mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, cafeOwner())

	w := patchJSON(r, "/cafes/c1", dto.UpdateCafeRequest{Name: strptr("Renamed Cafe")})

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockDirectory.LastCafePatch.Name) {
		assert.Equal(t, "Renamed Cafe", *mockDirectory.LastCafePatch.Name)
	}
	assert.Nil(t, mockDirectory.LastCafePatch.Location)
}

func TestGetEligibleDiscount_None(t *testing.T) {
	h := handler.NewCafeHandler(mocks.NewMockDirectoryUsecase(), mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cafes/c1/eligible-discount", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestGetEligibleDiscount_RoleFilter(t *testing.T) {
	mockDiscounts := mocks.NewMockDiscountUsecase()
	mockDiscounts.MockDiscount = &entity.Discount{
		ID:            "d1",
		CafeID:        "c1",
		Percentage:    20,
		ValidUntil:    time.Now().Add(24 * time.Hour),
		ApplicableFor: []entity.UserRole{entity.UserRoleStudent},
		IsActive:      true,
	}
	h := handler.NewCafeHandler(mocks.NewMockDirectoryUsecase(), mockDiscounts)
	r := setupCafeRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cafes/c1/eligible-discount?role=student", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockDiscounts.LastEligibleRole) {
		assert.Equal(t, entity.UserRoleStudent, *mockDiscounts.LastEligibleRole)
	}
}

func TestGetEligibleDiscount_BadRole(t *testing.T) {
	h := handler.NewCafeHandler(mocks.NewMockDirectoryUsecase(), mocks.NewMockDiscountUsecase())
	r := setupCafeRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cafes/c1/eligible-discount?role=cafe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
