package dto

// RegisterRequest is the payload for creating a new account. Cafe fields are
// only consulted when the requested role is "cafe".
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,signuprole"`

	IDNumber *string `json:"id_number,omitempty"`
	IDPhoto  *string `json:"id_photo,omitempty"`

	CafeName     *string `json:"cafe_name,omitempty"`
	CafeLocation *string `json:"cafe_location,omitempty"`
	CafeAddress  *string `json:"cafe_address,omitempty"`
	CafePhoto    *string `json:"cafe_photo,omitempty"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token to rotate or revoke.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest carries the refresh token of the session being ended.
// The token is optional: ending an absent session is not an error.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RejectRequest optionally carries the reason a request was rejected.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// SetMoodRequest is the payload for updating a cafe's crowd level.
type SetMoodRequest struct {
	Mood string `json:"mood" binding:"required,mood"`
}

// UpdateCafeRequest is the payload for editing cafe details. Absent fields
// are left untouched.
type UpdateCafeRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Address  *string `json:"address,omitempty"`
	Photo    *string `json:"photo,omitempty"`
}

// CreateDiscountRequest is the payload for publishing a discount.
type CreateDiscountRequest struct {
	CafeID        string   `json:"cafe_id" binding:"required"`
	Percentage    int      `json:"percentage" binding:"required"`
	Description   string   `json:"description"`
	ValidUntil    string   `json:"valid_until" binding:"required"`
	ApplicableFor []string `json:"applicable_for" binding:"omitempty,dive,redeemrole"`
}

// UpdateDiscountRequest is the payload for editing a discount. Absent fields
// are left untouched; applicable_for replaces the whole set when present.
type UpdateDiscountRequest struct {
	Percentage    *int     `json:"percentage,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ValidUntil    *string  `json:"valid_until,omitempty"`
	ApplicableFor []string `json:"applicable_for,omitempty" binding:"omitempty,dive,redeemrole"`
	IsActive      *bool    `json:"is_active,omitempty"`
}
