package entity

import (
	"time"
)

// Discount is a percentage discount offered by a cafe to one or more
// redeemable roles (student, staff).
type Discount struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	CafeID        string     `bson:"cafe_id" json:"cafe_id"`
	Percentage    int        `bson:"percentage" json:"percentage"`
	Description   string     `bson:"description" json:"description"`
	ValidUntil    time.Time  `bson:"valid_until" json:"valid_until"`
	ApplicableFor []UserRole `bson:"applicable_for" json:"applicable_for"`
	IsActive      bool       `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

// EffectivelyActive reports whether the discount can be redeemed at the
// given instant: the active flag is set and the validity window has not
// passed. This is always computed, never stored.
func (d *Discount) EffectivelyActive(now time.Time) bool {
	return d.IsActive && d.ValidUntil.After(now)
}

// AppliesTo reports whether the discount's applicable-for set includes the
// given role.
func (d *Discount) AppliesTo(role UserRole) bool {
	for _, r := range d.ApplicableFor {
		if r == role {
			return true
		}
	}
	return false
}

// DiscountUpdate is a typed patch for a discount. Only the listed fields are
// updatable; the owning cafe and the id can never be patched.
type DiscountUpdate struct {
	Percentage    *int       `bson:"percentage,omitempty" json:"percentage,omitempty"`
	Description   *string    `bson:"description,omitempty" json:"description,omitempty"`
	ValidUntil    *time.Time `bson:"valid_until,omitempty" json:"valid_until,omitempty"`
	ApplicableFor []UserRole `bson:"applicable_for,omitempty" json:"applicable_for,omitempty"`
	IsActive      *bool      `bson:"is_active,omitempty" json:"is_active,omitempty"`
}
