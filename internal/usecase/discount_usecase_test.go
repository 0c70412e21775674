package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

func (env *testEnv) createDiscount(t *testing.T, input usecasecontract.CreateDiscountInput) *entity.Discount {
	t.Helper()
	discount, err := env.discountUC.CreateDiscount(context.Background(), input)
	require.NoError(t, err)
	return discount
}

func discountInput(cafeID string, percentage int) usecasecontract.CreateDiscountInput {
	return usecasecontract.CreateDiscountInput{
		CafeID:     cafeID,
		Percentage: percentage,
		ValidUntil: time.Now().Add(24 * time.Hour),
	}
}

func TestCreateDiscount_DefaultsApplicableForAndActive(t *testing.T) {
	env := newTestEnv(t)

	discount := env.createDiscount(t, discountInput("c1", 20))

	assert.True(t, discount.IsActive)
	assert.Equal(t, []entity.UserRole{entity.UserRoleStudent, entity.UserRoleStaff}, discount.ApplicableFor)
}

func TestCreateDiscount_PercentageOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	for _, percentage := range []int{0, -5, 101} {
		_, err := env.discountUC.CreateDiscount(context.Background(), discountInput("c1", percentage))
		assert.ErrorIs(t, err, entity.ErrValidation, "percentage %d", percentage)
	}
}

func TestCreateDiscount_MissingValidUntil(t *testing.T) {
	env := newTestEnv(t)

	input := usecasecontract.CreateDiscountInput{CafeID: "c1", Percentage: 20}
	_, err := env.discountUC.CreateDiscount(context.Background(), input)

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreateDiscount_NonRedeemableRoleRejected(t *testing.T) {
	env := newTestEnv(t)

	input := discountInput("c1", 20)
	input.ApplicableFor = []entity.UserRole{entity.UserRoleCafe}
	_, err := env.discountUC.CreateDiscount(context.Background(), input)

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestGetEligibleDiscount_SkipsExpiredAndInactive(t *testing.T) {
	env := newTestEnv(t)

	expired := discountInput("c1", 10)
	expired.ValidUntil = time.Now().Add(-time.Hour)
	env.createDiscount(t, expired)

	disabled := env.createDiscount(t, discountInput("c1", 15))
	off := false
	_, err := env.discountUC.UpdateDiscount(context.Background(), disabled.ID, entity.DiscountUpdate{IsActive: &off})
	require.NoError(t, err)

	live := env.createDiscount(t, discountInput("c1", 20))

	found, err := env.discountUC.GetEligibleDiscount(context.Background(), "c1", nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, live.ID, found.ID)
}

func TestGetEligibleDiscount_RoleFilter(t *testing.T) {
	env := newTestEnv(t)

	staffOnly := discountInput("c1", 25)
	staffOnly.ApplicableFor = []entity.UserRole{entity.UserRoleStaff}
	env.createDiscount(t, staffOnly)

	student := entity.UserRoleStudent
	found, err := env.discountUC.GetEligibleDiscount(context.Background(), "c1", &student)
	require.NoError(t, err)
	assert.Nil(t, found)

	staff := entity.UserRoleStaff
	found, err = env.discountUC.GetEligibleDiscount(context.Background(), "c1", &staff)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestGetEligibleDiscount_FirstInStorageOrderWins(t *testing.T) {
	env := newTestEnv(t)

	first := env.createDiscount(t, discountInput("c1", 10))
	env.createDiscount(t, discountInput("c1", 50))

	found, err := env.discountUC.GetEligibleDiscount(context.Background(), "c1", nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)
}

func TestGetEligibleDiscount_OtherCafeIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.createDiscount(t, discountInput("c2", 20))

	found, err := env.discountUC.GetEligibleDiscount(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCafeHasEligibleDiscount_IgnoresRoleRestriction(t *testing.T) {
	env := newTestEnv(t)

	staffOnly := discountInput("c1", 25)
	staffOnly.ApplicableFor = []entity.UserRole{entity.UserRoleStaff}
	env.createDiscount(t, staffOnly)

	// a student sees no eligible discount, yet the cafe still counts as
	// having one
	student := entity.UserRoleStudent
	found, err := env.discountUC.GetEligibleDiscount(context.Background(), "c1", &student)
	require.NoError(t, err)
	assert.Nil(t, found)

	has, err := env.discountUC.CafeHasEligibleDiscount(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestUpdateDiscount_PatchesOnlyGivenFields(t *testing.T) {
	env := newTestEnv(t)
	discount := env.createDiscount(t, discountInput("c1", 20))

	percentage := 30
	updated, err := env.discountUC.UpdateDiscount(context.Background(), discount.ID, entity.DiscountUpdate{Percentage: &percentage})

	require.NoError(t, err)
	assert.Equal(t, 30, updated.Percentage)
	assert.Equal(t, discount.ApplicableFor, updated.ApplicableFor)
	assert.WithinDuration(t, discount.ValidUntil, updated.ValidUntil, time.Second)
}

func TestUpdateDiscount_InvalidPatchRejected(t *testing.T) {
	env := newTestEnv(t)
	discount := env.createDiscount(t, discountInput("c1", 20))

	percentage := 200
	_, err := env.discountUC.UpdateDiscount(context.Background(), discount.ID, entity.DiscountUpdate{Percentage: &percentage})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestDeleteDiscount_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	discount := env.createDiscount(t, discountInput("c1", 20))

	require.NoError(t, env.discountUC.DeleteDiscount(context.Background(), discount.ID))
	assert.NoError(t, env.discountUC.DeleteDiscount(context.Background(), discount.ID))

	_, err := env.discountUC.GetDiscount(context.Background(), discount.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
