package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/school_fund_ledger/internal/cache"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
)

type balanceService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerEntryReader
	schoolYears portssvc.SchoolYearSvc
	cache       *cache.Cache[domain.FundBalances]
}

// NewBalanceService creates a BalanceService reading the ledger through ledgerRepo.
// A nil cache disables caching.
func NewBalanceService(ledgerRepo portsrepo.LedgerEntryReader, schoolYears portssvc.SchoolYearSvc, c *cache.Cache[domain.FundBalances]) portssvc.BalanceService {
	return &balanceService{
		ledgerRepo:  ledgerRepo,
		schoolYears: schoolYears,
		cache:       c,
	}
}

func (s *balanceService) GetBalances(ctx context.Context, schoolYearID string) (*domain.FundBalances, error) {
	if schoolYearID == "" {
		sy, err := s.schoolYears.CurrentSchoolYear(ctx)
		if err != nil {
			return nil, err
		}
		schoolYearID = sy.SchoolYearID
	}

	if cached, ok := s.cache.Get(schoolYearID); ok {
		return &cached, nil
	}
	gen := s.cache.Generation()

	entries, err := s.ledgerRepo.FindEntries(ctx, portsrepo.LedgerEntryFilter{SchoolYearID: schoolYearID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for balances", slog.String("school_year_id", schoolYearID))
		return nil, fmt.Errorf("failed to load entries for school year %s: %w", schoolYearID, err)
	}

	balances := accounting.ComputeBalances(schoolYearID, entries)
	s.cache.SetIfGeneration(schoolYearID, balances, gen)
	s.LogDebug(ctx, "Balances computed",
		slog.String("school_year_id", schoolYearID),
		slog.Int("entries", len(entries)),
		slog.String("total", balances.Total.StringFixed(2)))
	return &balances, nil
}

func (s *balanceService) Invalidate() {
	s.cache.Purge()
}
