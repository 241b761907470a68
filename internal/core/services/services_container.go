package services

import (
	"github.com/SscSPs/school_fund_ledger/internal/cache"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with all services initialized
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Period and identity resolution is consulted by every other service
	container.SchoolYear = NewSchoolYearService(repos.SchoolYearRepo)
	container.Identity = NewIdentityService(repos.UserRepo)

	container.Balance = NewBalanceService(
		repos.LedgerRepo,
		container.SchoolYear,
		cache.New[domain.FundBalances](cfg.CacheSize, cfg.CacheTTL),
	)
	container.Stats = NewStatsService(
		repos.LedgerRepo,
		container.SchoolYear,
		cache.New[domain.DashboardStats](cfg.CacheSize, cfg.CacheTTL),
		WithStatsClock(cfg.Now),
	)

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		container.Identity,
		container.SchoolYear,
		container.Balance,
		WithClock(cfg.Now),
		WithInvalidators(container.Stats.Invalidate),
	)

	container.Reporting = NewReportingService(repos.LedgerRepo, repos.CategoryRepo)
	container.Categories = NewAllocationCategoryService(repos.CategoryRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade       = (*LedgerService)(nil)
	_ portssvc.BalanceService        = (*balanceService)(nil)
	_ portssvc.StatsService          = (*statsService)(nil)
	_ portssvc.ReportingService      = (*reportingService)(nil)
	_ portssvc.AllocationCategorySvc = (*allocationCategoryService)(nil)
	_ portssvc.IdentitySvc           = (*identityService)(nil)
	_ portssvc.SchoolYearSvc         = (*schoolYearService)(nil)
)
