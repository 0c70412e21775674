package inmem

import (
	"context"
	"sync"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// Store is the embedded storage backend: one slice per entity collection
// plus the seed flag, guarded by a single RWMutex. Slices preserve
// insertion order, which the discount eligibility tie-break relies on. It
// backs the service when no MongoDB is configured and gives tests a fresh
// arena per test.
type Store struct {
	mu sync.RWMutex

	users     []entity.User
	cafes     []entity.Cafe
	pending   []entity.PendingCafeRequest
	discounts []entity.Discount
	tokens    []entity.Token
	seeded    bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Reset drops all data including the seed flag.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	s.cafes = nil
	s.pending = nil
	s.discounts = nil
	s.tokens = nil
	s.seeded = false
}

// txKey marks a context as running inside WithinTransaction, where the
// store lock is already held.
type txKey struct{}

func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey{}).(bool)
	return held
}

// lock acquires the write lock unless the context already holds it through
// a transaction. It returns the matching unlock.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// rlock acquires the read lock unless the context already holds the write
// lock through a transaction. It returns the matching unlock.
func (s *Store) rlock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// snapshot copies every collection so a failed transaction can be rolled
// back. Callers must hold the write lock.
func (s *Store) snapshot() *Store {
	return &Store{
		users:     append([]entity.User(nil), s.users...),
		cafes:     append([]entity.Cafe(nil), s.cafes...),
		pending:   append([]entity.PendingCafeRequest(nil), s.pending...),
		discounts: append([]entity.Discount(nil), s.discounts...),
		tokens:    append([]entity.Token(nil), s.tokens...),
		seeded:    s.seeded,
	}
}

// restore reinstates a snapshot. Callers must hold the write lock.
func (s *Store) restore(snap *Store) {
	s.users = snap.users
	s.cafes = snap.cafes
	s.pending = snap.pending
	s.discounts = snap.discounts
	s.tokens = snap.tokens
	s.seeded = snap.seeded
}
