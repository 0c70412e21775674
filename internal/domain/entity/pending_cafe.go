package entity

import (
	"time"
)

// PendingCafeStatus is the lifecycle state of a cafe request. Approved and
// rejected requests are removed from storage, so persisted requests are
// always pending.
type PendingCafeStatus string

const (
	PendingCafeStatusPending PendingCafeStatus = "pending"
)

// PendingCafeRequest is an unapproved cafe-owner signup awaiting admin
// action. It is created together with the owning user at registration time
// and terminated by admin approval (converted into a Cafe) or rejection
// (deleted outright).
type PendingCafeRequest struct {
	ID        string            `bson:"_id,omitempty" json:"id"`
	UserID    string            `bson:"user_id" json:"user_id"`
	Name      string            `bson:"name" json:"name"`
	Photo     *string           `bson:"photo,omitempty" json:"photo,omitempty"`
	Location  string            `bson:"location" json:"location"`
	Address   *string           `bson:"address,omitempty" json:"address,omitempty"`
	Status    PendingCafeStatus `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
