package usecasecontract

import (
	"time"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

// IAppLogger is the logging interface used by the usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IValidator validates input fields before they reach storage.
type IValidator interface {
	ValidateEmail(email string) error
	// ValidatePercentage checks a discount percentage is in [1,100].
	ValidatePercentage(percentage int) error
	// ValidateApplicableFor checks the role set is non-empty and contains
	// only redeemable roles.
	ValidateApplicableFor(roles []entity.UserRole) error
}

// IConfigProvider exposes the configuration values the usecases and the
// seeder need.
type IConfigProvider interface {
	GetRefreshTokenExpiry() time.Duration
	GetSeedAdminEmail() string
	GetSeedAdminPassword() string
	GetSeedAdminName() string
}

// IChangeNotifier broadcasts a change event after every mutating operation
// so connected clients can refresh their views. Implementations must never
// block the mutating call.
type IChangeNotifier interface {
	NotifyChanged(collection, id string)
}
