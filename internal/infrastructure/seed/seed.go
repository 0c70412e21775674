package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// Seeder performs the guarded one-time initialization of the store: it
// creates the default admin account and then sets the persisted seed flag.
// Once the flag is set, Run is a no-op forever — restarting the service
// never resets or duplicates existing data.
type Seeder struct {
	userRepo      contract.IUserRepository
	settingsRepo  contract.ISettingsRepository
	hasher        contract.IHasher
	uuidGenerator contract.IUUIDGenerator
	config        usecasecontract.IConfigProvider
	logger        usecasecontract.IAppLogger
}

func NewSeeder(
	userRepo contract.IUserRepository,
	settingsRepo contract.ISettingsRepository,
	hasher contract.IHasher,
	uuidGenerator contract.IUUIDGenerator,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *Seeder {
	return &Seeder{
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
		hasher:        hasher,
		uuidGenerator: uuidGenerator,
		config:        cfg,
		logger:        logger,
	}
}

// Run seeds the store exactly once.
func (s *Seeder) Run(ctx context.Context) error {
	seeded, err := s.settingsRepo.WasSeeded(ctx)
	if err != nil {
		return fmt.Errorf("failed to read seed flag: %w", err)
	}
	if seeded {
		return nil
	}

	hashedPassword, err := s.hasher.HashPassword(s.config.GetSeedAdminPassword())
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entity.User{
		ID:           s.uuidGenerator.NewUUID(),
		Email:        s.config.GetSeedAdminEmail(),
		PasswordHash: hashedPassword,
		Name:         s.config.GetSeedAdminName(),
		Role:         entity.UserRoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, admin); err != nil {
		// The admin already existing means a previous seed run created it
		// but crashed before setting the flag; just set the flag.
		if !errors.Is(err, entity.ErrDuplicateEmail) {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
	} else {
		s.logger.Infof("seeded default admin account %s", admin.Email)
	}

	if err := s.settingsRepo.MarkSeeded(ctx); err != nil {
		return fmt.Errorf("failed to set seed flag: %w", err)
	}
	return nil
}
