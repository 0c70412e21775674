package entity

import (
	"time"
)

// User represents a registered account in the campus directory.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         UserRole  `bson:"role" json:"role"`
	CafeID       *string   `bson:"cafe_id,omitempty" json:"cafe_id,omitempty"`
	Verified     *bool     `bson:"verified,omitempty" json:"verified,omitempty"`
	IDNumber     *string   `bson:"id_number,omitempty" json:"id_number,omitempty"`
	IDPhoto      *string   `bson:"id_photo,omitempty" json:"id_photo,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleStaff   UserRole = "staff"
	UserRoleCafe    UserRole = "cafe"
	UserRoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleStudent, UserRoleStaff, UserRoleCafe, UserRoleAdmin:
		return true
	}
	return false
}

// RequiresVerification reports whether accounts with this role must be
// verified by an admin before they can redeem discounts.
func (r UserRole) RequiresVerification() bool {
	return r == UserRoleStudent || r == UserRoleStaff
}

// CanRedeemDiscounts reports whether the role may appear in a discount's
// applicable-for set.
func (r UserRole) CanRedeemDiscounts() bool {
	return r == UserRoleStudent || r == UserRoleStaff
}
