package dto

import (
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// UserResponse is the DTO for a user. Credentials are never part of it.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	CafeID    *string `json:"cafe_id"`
	Verified  *bool   `json:"verified"`
	IDNumber  *string `json:"id_number,omitempty"`
	IDPhoto   *string `json:"id_photo,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshTokenResponse is the DTO for a token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CafeResponse is the DTO for a cafe.
type CafeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Photo       *string `json:"photo,omitempty"`
	Location    string  `json:"location"`
	Address     *string `json:"address,omitempty"`
	CurrentMood string  `json:"current_mood"`
	OwnerID     string  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
}

// PendingCafeResponse is the DTO for a pending cafe request.
type PendingCafeResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Photo     *string `json:"photo,omitempty"`
	Location  string  `json:"location"`
	Address   *string `json:"address,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// DiscountResponse is the DTO for a discount.
type DiscountResponse struct {
	ID            string   `json:"id"`
	CafeID        string   `json:"cafe_id"`
	Percentage    int      `json:"percentage"`
	Description   string   `json:"description"`
	ValidUntil    string   `json:"valid_until"`
	ApplicableFor []string `json:"applicable_for"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CafeID:    user.CafeID,
		Verified:  user.Verified,
		IDNumber:  user.IDNumber,
		IDPhoto:   user.IDPhoto,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ToCafeResponse converts an entity.Cafe to a CafeResponse DTO.
func ToCafeResponse(cafe entity.Cafe) CafeResponse {
	return CafeResponse{
		ID:          cafe.ID,
		Name:        cafe.Name,
		Photo:       cafe.Photo,
		Location:    cafe.Location,
		Address:     cafe.Address,
		CurrentMood: string(cafe.CurrentMood),
		OwnerID:     cafe.OwnerID,
		CreatedAt:   cafe.CreatedAt.Format(time.RFC3339),
	}
}

// ToPendingCafeResponse converts an entity.PendingCafeRequest to its DTO.
func ToPendingCafeResponse(req entity.PendingCafeRequest) PendingCafeResponse {
	return PendingCafeResponse{
		ID:        req.ID,
		UserID:    req.UserID,
		Name:      req.Name,
		Photo:     req.Photo,
		Location:  req.Location,
		Address:   req.Address,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.Format(time.RFC3339),
	}
}

// ToDiscountResponse converts an entity.Discount to a DiscountResponse DTO.
func ToDiscountResponse(discount entity.Discount) DiscountResponse {
	roles := make([]string, 0, len(discount.ApplicableFor))
	for _, role := range discount.ApplicableFor {
		roles = append(roles, string(role))
	}
	return DiscountResponse{
		ID:            discount.ID,
		CafeID:        discount.CafeID,
		Percentage:    discount.Percentage,
		Description:   discount.Description,
		ValidUntil:    discount.ValidUntil.Format(time.RFC3339),
		ApplicableFor: roles,
		IsActive:      discount.IsActive,
		CreatedAt:     discount.CreatedAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
