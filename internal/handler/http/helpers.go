package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler maps domain errors to HTTP responses.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrDuplicateEmail):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, entity.ErrInvalidMood), errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusUnprocessableEntity, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}

// AuthenticatedUser pulls the user set by the auth middleware out of the
// request context.
func AuthenticatedUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// canManageCafe reports whether the caller may mutate the given cafe: admins
// always can, cafe owners only for their own cafe.
func canManageCafe(user *entity.User, cafeID string) bool {
	if user == nil {
		return false
	}
	if user.Role == entity.UserRoleAdmin {
		return true
	}
	return user.Role == entity.UserRoleCafe && user.CafeID != nil && *user.CafeID == cafeID
}
