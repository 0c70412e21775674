package mocks

import (
	"context"
	"errors"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// MockDirectoryUsecase is a mock implementation of the directory usecase
// interface
type MockDirectoryUsecase struct {
	// Control mock behavior
	ShouldFailListPendingCafes bool
	ShouldFailApprove          bool
	ShouldFailReject           bool
	ShouldFailListCafes        bool
	ShouldFailSetMood          bool
	ShouldFailUpdateDetails    bool
	InvalidMood                bool

	// Return values; nil pointers yield the "absent" behavior
	MockCafe        *entity.Cafe
	MockCafes       []entity.Cafe
	MockPendingCafe *entity.PendingCafeRequest
	MockPending     []entity.PendingCafeRequest

	// Captured arguments
	ApprovedPendingID string
	RejectedPendingID string
	RejectedReason    string
	LastMood          entity.Mood
	LastCafePatch     entity.CafeUpdate
}

// Ensure MockDirectoryUsecase implements the correct interface for the
// handlers
var _ usecasecontract.IDirectoryUseCase = (*MockDirectoryUsecase)(nil)

func NewMockDirectoryUsecase() *MockDirectoryUsecase {
	return &MockDirectoryUsecase{}
}

func (m *MockDirectoryUsecase) ListPendingCafes(ctx context.Context) ([]entity.PendingCafeRequest, error) {
	if m.ShouldFailListPendingCafes {
		return nil, errors.New("list pending cafes failed")
	}
	return m.MockPending, nil
}

func (m *MockDirectoryUsecase) PendingCafeForUser(ctx context.Context, userID string) (*entity.PendingCafeRequest, error) {
	return m.MockPendingCafe, nil
}

func (m *MockDirectoryUsecase) ApproveCafeRequest(ctx context.Context, pendingID string) (*entity.Cafe, error) {
	m.ApprovedPendingID = pendingID
	if m.ShouldFailApprove {
		return nil, entity.ErrNotFound
	}
	return m.MockCafe, nil
}

func (m *MockDirectoryUsecase) RejectCafeRequest(ctx context.Context, pendingID, reason string) error {
	m.RejectedPendingID = pendingID
	m.RejectedReason = reason
	if m.ShouldFailReject {
		return errors.New("reject cafe request failed")
	}
	return nil
}

func (m *MockDirectoryUsecase) ListCafes(ctx context.Context) ([]entity.Cafe, error) {
	if m.ShouldFailListCafes {
		return nil, errors.New("list cafes failed")
	}
	return m.MockCafes, nil
}

func (m *MockDirectoryUsecase) GetCafe(ctx context.Context, cafeID string) (*entity.Cafe, error) {
	return m.MockCafe, nil
}

func (m *MockDirectoryUsecase) SetCafeMood(ctx context.Context, cafeID string, mood entity.Mood) (*entity.Cafe, error) {
	m.LastMood = mood
	if m.InvalidMood {
		return nil, entity.ErrInvalidMood
	}
	if m.ShouldFailSetMood {
		return nil, entity.ErrNotFound
	}
	return m.MockCafe, nil
}

func (m *MockDirectoryUsecase) UpdateCafeDetails(ctx context.Context, cafeID string, patch entity.CafeUpdate) (*entity.Cafe, error) {
	m.LastCafePatch = patch
	if m.ShouldFailUpdateDetails {
		return nil, entity.ErrNotFound
	}
	return m.MockCafe, nil
}
