package inmem

import (
	"context"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.users {
		if r.store.users[i].Email == user.Email {
			return entity.ErrDuplicateEmail
		}
	}
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	for i := range r.store.users {
		if r.store.users[i].Email == email {
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	return append([]entity.User(nil), r.store.users...), nil
}

func (r *UserRepository) SetUserVerified(ctx context.Context, id string) (*entity.User, error) {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			verified := true
			r.store.users[i].Verified = &verified
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *UserRepository) SetUserCafeID(ctx context.Context, id, cafeID string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			r.store.users[i].CafeID = &cafeID
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	// Idempotent: deleting an absent user is a no-op.
	users := r.store.users[:0]
	for i := range r.store.users {
		if r.store.users[i].ID != id {
			users = append(users, r.store.users[i])
		}
	}
	r.store.users = users
	return nil
}
