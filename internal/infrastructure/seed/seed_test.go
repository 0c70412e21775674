package seed_test

import (
	"context"
	"testing"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/config"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/logger"
	passwordservice "github.com/PurpleArcher2/discounts-app/internal/infrastructure/password_service"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/repository/inmem"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/seed"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/uuidgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder(store *inmem.Store) (*seed.Seeder, *inmem.UserRepository) {
	userRepo := inmem.NewUserRepository(store)
	return seed.NewSeeder(
		userRepo,
		inmem.NewSettingsRepository(store),
		passwordservice.NewHasher(),
		uuidgen.NewGenerator(),
		config.NewConfig(),
		logger.NewStdLogger(),
	), userRepo
}

func TestSeedCreatesAdminOnce(t *testing.T) {
	store := inmem.NewStore()
	seeder, userRepo := newSeeder(store)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	admin, err := userRepo.GetUserByEmail(ctx, "admin@campus.com")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, admin.Role)
	assert.Nil(t, admin.Verified)
	assert.NotEmpty(t, admin.PasswordHash)

	hasher := passwordservice.NewHasher()
	assert.NoError(t, hasher.ComparePasswordHash("admin123", admin.PasswordHash))
}

func TestSeedIsIdempotent(t *testing.T) {
	store := inmem.NewStore()
	seeder, userRepo := newSeeder(store)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	// Data registered after the first init must survive a re-run.
	student := &entity.User{ID: "u-1", Email: "student@campus.com", Name: "Student", Role: entity.UserRoleStudent}
	require.NoError(t, userRepo.CreateUser(ctx, student))

	require.NoError(t, seeder.Run(ctx))

	users, err := userRepo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSeedRecoversWhenFlagWriteWasLost(t *testing.T) {
	store := inmem.NewStore()
	seeder, userRepo := newSeeder(store)
	ctx := context.Background()

	// Simulate a crash between creating the admin and setting the flag.
	require.NoError(t, seeder.Run(ctx))
	store.Reset()
	admin := &entity.User{ID: "a-1", Email: "admin@campus.com", Name: "System Administrator", Role: entity.UserRoleAdmin}
	require.NoError(t, userRepo.CreateUser(ctx, admin))

	require.NoError(t, seeder.Run(ctx))

	users, err := userRepo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
