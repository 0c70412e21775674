package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	handler "github.com/PurpleArcher2/discounts-app/internal/handler/http"
	dto "github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
	mocks "github.com/PurpleArcher2/discounts-app/internal/handler/http/mocks"
	appvalidator "github.com/PurpleArcher2/discounts-app/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	appvalidator.RegisterCustomValidators()
	os.Exit(m.Run())
}

// injectUser simulates the auth middleware for protected-route tests.
func injectUser(user *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Next()
	}
}

func strptr(s string) *string { return &s }

func setupAuthRouter(h *handler.AuthHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/refresh-token", h.RefreshToken)
	r.POST("/logout", h.Logout)
	me := r.Group("/")
	if user != nil {
		me.Use(injectUser(user))
	}
	me.GET("/me", h.GetCurrentUser)
	me.GET("/me/pending-cafe", h.GetMyPendingCafe)
	return r
}

func newJSONRequest(method, path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, newJSONRequest("POST", path, payload))
	return w
}

func TestRegister(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Email:    "student@campus.com",
		Password: "Password123!",
		Name:     "Test Student",
		Role:     "student",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
	assert.Equal(t, entity.UserRoleStudent, mockUsers.LastRegisterInput.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	mockUsers.DuplicateEmail = true
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Email:    "taken@campus.com",
		Password: "Password123!",
		Name:     "Second Account",
		Role:     "student",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Email:    "sneaky@campus.com",
		Password: "Password123!",
		Name:     "Sneaky",
		Role:     "admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "signuprole")
}

func TestRegister_CafeFieldsForwarded(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Email:        "owner@campus.com",
		Password:     "Password123!",
		Name:         "Owner",
		Role:         "cafe",
		CafeName:     strptr("Corner Cafe"),
		CafeLocation: strptr("Library Block"),
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Corner Cafe", mockUsers.LastRegisterInput.CafeName)
	assert.Equal(t, "Library Block", mockUsers.LastRegisterInput.CafeLocation)
}

func TestLogin(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
	assert.Contains(t, w.Body.String(), "mock_refresh_token")
}

func TestLogin_Fail(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	mockUsers.ShouldFailLogin = true
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRefreshToken_Fail(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	mockUsers.ShouldFailRefreshToken = true
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/refresh-token", dto.RefreshTokenRequest{RefreshToken: "stale"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/logout", dto.LogoutRequest{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}

func TestGetCurrentUser(t *testing.T) {
	mockUsers := mocks.NewMockUserUsecase()
	user := &entity.User{ID: "u1", Email: "me@campus.com", Name: "Me", Role: entity.UserRoleStudent}
	h := handler.NewAuthHandler(mockUsers, mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "me@campus.com")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetMyPendingCafe(t *testing.T) {
	mockDirectory := mocks.NewMockDirectoryUsecase()
	mockDirectory.MockPendingCafe = &entity.PendingCafeRequest{
		ID:        "p1",
		UserID:    "u1",
		Name:      "Corner Cafe",
		Location:  "Library Block",
		Status:    entity.PendingCafeStatusPending,
		CreatedAt: time.Now(),
	}
	user := &entity.User{ID: "u1", Role: entity.UserRoleCafe}
	h := handler.NewAuthHandler(mocks.NewMockUserUsecase(), mockDirectory)
	r := setupAuthRouter(h, user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me/pending-cafe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corner Cafe")
}

func TestGetMyPendingCafe_None(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.UserRoleCafe}
	h := handler.NewAuthHandler(mocks.NewMockUserUsecase(), mocks.NewMockDirectoryUsecase())
	r := setupAuthRouter(h, user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me/pending-cafe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
