package services_test

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) CountEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) MoveEntryToHistory(ctx context.Context, deleted domain.DeletedLedgerEntry) error {
	args := m.Called(ctx, deleted)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListDeletedEntries(ctx context.Context, offset, limit int, search string) ([]domain.DeletedLedgerEntry, int, error) {
	args := m.Called(ctx, offset, limit, search)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DeletedLedgerEntry), args.Int(1), args.Error(2)
}

func (m *MockLedgerRepository) FindDeletedEntryByID(ctx context.Context, deletedEntryID string) (*domain.DeletedLedgerEntry, error) {
	args := m.Called(ctx, deletedEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeletedLedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindDeletedEntryByOriginalID(ctx context.Context, originalID string) (*domain.DeletedLedgerEntry, error) {
	args := m.Called(ctx, originalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeletedLedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) PurgeDeletedEntry(ctx context.Context, deletedEntryID string) error {
	args := m.Called(ctx, deletedEntryID)
	return args.Error(0)
}

// --- Mock AllocationCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.AllocationCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllocationCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.AllocationCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocationCategory), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.AllocationCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.AllocationCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock SchoolYearRepository ---
type MockSchoolYearRepository struct {
	mock.Mock
}

func (m *MockSchoolYearRepository) FindActiveSchoolYear(ctx context.Context) (*domain.SchoolYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchoolYear), args.Error(1)
}

func (m *MockSchoolYearRepository) FindSchoolYearByID(ctx context.Context, schoolYearID string) (*domain.SchoolYear, error) {
	args := m.Called(ctx, schoolYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchoolYear), args.Error(1)
}
