package entity

import (
	"time"
)

// Cafe is an approved campus cafe. A cafe only exists after an admin
// approves the owner's pending request.
type Cafe struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Photo       *string   `bson:"photo,omitempty" json:"photo,omitempty"`
	Location    string    `bson:"location" json:"location"`
	Address     *string   `bson:"address,omitempty" json:"address,omitempty"`
	CurrentMood Mood      `bson:"current_mood" json:"current_mood"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Mood is a cafe's self-reported crowd level.
type Mood string

const (
	MoodCalm     Mood = "Calm"
	MoodModerate Mood = "Moderate"
	MoodCrowded  Mood = "Crowded"
)

// Valid reports whether the mood is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodCalm, MoodModerate, MoodCrowded:
		return true
	}
	return false
}

// CafeUpdate is a typed patch for cafe details. Only the listed fields are
// updatable; identity and ownership fields can never be patched.
type CafeUpdate struct {
	Name     *string `bson:"name,omitempty" json:"name,omitempty"`
	Location *string `bson:"location,omitempty" json:"location,omitempty"`
	Address  *string `bson:"address,omitempty" json:"address,omitempty"`
	Photo    *string `bson:"photo,omitempty" json:"photo,omitempty"`
}
