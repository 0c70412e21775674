package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the
// usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePercentage checks a discount percentage is a positive integer not
// exceeding 100.
func (av *AppValidator) ValidatePercentage(percentage int) error {
	if err := av.validate.Var(percentage, "gte=1,lte=100"); err != nil {
		return fmt.Errorf("%w: percentage must be between 1 and 100, got %d", entity.ErrValidation, percentage)
	}
	return nil
}

// ValidateApplicableFor checks the role set is non-empty and contains only
// roles that can redeem discounts.
func (av *AppValidator) ValidateApplicableFor(roles []entity.UserRole) error {
	if len(roles) == 0 {
		return fmt.Errorf("%w: applicable_for must not be empty", entity.ErrValidation)
	}
	for _, role := range roles {
		if !role.CanRedeemDiscounts() {
			return fmt.Errorf("%w: role %q cannot redeem discounts", entity.ErrValidation, role)
		}
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the
// Gin binding validator so DTO tags can use them.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("mood", moodFL)
		v.RegisterValidation("signuprole", signupRoleFL)
		v.RegisterValidation("redeemrole", redeemRoleFL)
	}
}

// moodFL validates a cafe mood value.
func moodFL(fl validator.FieldLevel) bool {
	return entity.Mood(fl.Field().String()).Valid()
}

// signupRoleFL validates a role that can be used at signup. Admin accounts
// are seeded, never self-registered.
func signupRoleFL(fl validator.FieldLevel) bool {
	role := entity.UserRole(fl.Field().String())
	return role.Valid() && role != entity.UserRoleAdmin
}

// redeemRoleFL validates a role appearing in a discount's applicable-for
// set.
func redeemRoleFL(fl validator.FieldLevel) bool {
	return entity.UserRole(fl.Field().String()).CanRedeemDiscounts()
}
