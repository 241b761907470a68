package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockLedgerService) ListDeletedEntries(ctx context.Context, offset, limit int, search string) (*dto.ListDeletedEntriesResponse, error) {
	args := m.Called(ctx, offset, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDeletedEntriesResponse), args.Error(1)
}
func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}
func (m *MockLedgerService) PurgeDeletedEntry(ctx context.Context, deletedEntryID string, callerRole domain.UserRole) error {
	args := m.Called(ctx, deletedEntryID, callerRole)
	return args.Error(0)
}

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) ResolveUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock reporting services ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalances(ctx context.Context, schoolYearID string) (*domain.FundBalances, error) {
	args := m.Called(ctx, schoolYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundBalances), args.Error(1)
}
func (m *MockBalanceService) Invalidate() { m.Called() }

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockStatsService) Invalidate() { m.Called() }

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetAllocationReport(ctx context.Context, from, to time.Time) (*domain.AllocationReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocationReport), args.Error(1)
}

// --- Mock AllocationCategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.AllocationCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllocationCategory), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateAllocationCategoryRequest, caller domain.User) (*domain.AllocationCategory, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocationCategory), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateAllocationCategoryRequest, caller domain.User) (*domain.AllocationCategory, error) {
	args := m.Called(ctx, categoryID, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocationCategory), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string, caller domain.User) error {
	args := m.Called(ctx, categoryID, caller)
	return args.Error(0)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.LedgerSvcFacade       = (*MockLedgerService)(nil)
	_ portssvc.IdentitySvc           = (*MockIdentityService)(nil)
	_ portssvc.BalanceService        = (*MockBalanceService)(nil)
	_ portssvc.StatsService          = (*MockStatsService)(nil)
	_ portssvc.ReportingService      = (*MockReportingService)(nil)
	_ portssvc.AllocationCategorySvc = (*MockCategoryService)(nil)
)
