package contract

// IHasher hashes and verifies credentials and opaque tokens.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString hashes a long opaque string such as a refresh token.
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IUUIDGenerator generates opaque unique identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
