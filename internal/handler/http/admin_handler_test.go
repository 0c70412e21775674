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

func setupAdminRouter(userUC *mocks.MockUserUsecase, directoryUC *mocks.MockDirectoryUsecase) *gin.Engine {
	h := handler.NewAdminHandler(userUC, directoryUC)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(injectUser(&entity.User{ID: "a1", Role: entity.UserRoleAdmin}))
	admin.GET("/users", h.ListUsers)
	admin.POST("/users/:id/verify", h.VerifyUser)
	admin.DELETE("/users/:id", h.RejectUser)
	admin.GET("/pending-cafes", h.ListPendingCafes)
	admin.POST("/pending-cafes/:id/approve", h.ApproveCafeRequest)
	admin.DELETE("/pending-cafes/:id", h.RejectCafeRequest)
	return r
}

func TestListUsers_Filters(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	r := setupAdminRouter(mockUsers, mocks.NewMockDirectoryUsecase())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/users?role=student&verified=false", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockUsers.LastListFilter.Role) {
		assert.Equal(t, entity.UserRoleStudent, *mockUsers.LastListFilter.Role)
	}
	if assert.NotNil(t, mockUsers.LastListFilter.Verified) {
		assert.False(t, *mockUsers.LastListFilter.Verified)
	}
}

func TestListUsers_BadRoleFilter(t *testing.T) {
	r := setupAdminRouter(mocks.NewMockUserUsecase(), mocks.NewMockDirectoryUsecase())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/users?role=wizard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyUser(t *testing.T) {
	r := setupAdminRouter(mocks.NewMockUserUsecase(), mocks.NewMockDirectoryUsecase())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/users/u1/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
}

func TestVerifyUser_NotFound(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	mockUsers.ShouldFailVerifyUser = true
	r := setupAdminRouter(mockUsers, mocks.NewMockDirectoryUsecase())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/users/missing/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectUser(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	r := setupAdminRouter(mockUsers, mocks.NewMockDirectoryUsecase())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/users/u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", mockUsers.RejectedUserID)
}

func TestListPendingCafes(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockPending = []entity.PendingCafeRequest{{
		ID:        "p1",
		UserID:    "u1",
		Name:      "Corner Cafe",
		Location:  "Library Block",
		Status:    entity.PendingCafeStatusPending,
		CreatedAt: time.Now(),
	}}
	r := setupAdminRouter(mocks.NewMockUserUsecase(), mockDirectory)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/pending-cafes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corner Cafe")
	assert.Contains(t, w.Body.String(), "pending")
}

func TestApproveCafeRequest(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockCafe = testCafe()
	r := setupAdminRouter(mocks.NewMockUserUsecase(), mockDirectory)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/pending-cafes/p1/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", mockDirectory.ApprovedPendingID)
	assert.Contains(t, w.Body.String(), "Corner Cafe")
}

func TestApproveCafeRequest_NotFound(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.ShouldFailApprove = true
	r := setupAdminRouter(mocks.NewMockUserUsecase(), mockDirectory)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/pending-cafes/missing/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectCafeRequest(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	r := setupAdminRouter(mocks.NewMockUserUsecase(), mockDirectory)

	w := httptest.NewRecorder()
	req := newJSONRequest("DELETE", "/admin/pending-cafes/p1", dto.RejectRequest{Reason: "incomplete application"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", mockDirectory.RejectedPendingID)
	assert.Equal(t, "incomplete application", mockDirectory.RejectedReason)
}
