package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the kinds of tokens kept in the token store.
type TokenType string

const (
	TokenTypeRefresh TokenType = "refresh"
)

// Token is a stored refresh-token record. Only the SHA-256 hash of the
// token is persisted, never the token itself.
type Token struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Revoke    bool      `bson:"revoke" json:"revoke"`
}

// Claims are the parsed JWT claims used by the auth middleware.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
