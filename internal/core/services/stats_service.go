package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/cache"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerEntryReader
	schoolYears portssvc.SchoolYearSvc
	cache       *cache.Cache[domain.DashboardStats]
}

// StatsServiceOption configures a StatsService
type StatsServiceOption func(*statsService)

// WithStatsClock overrides the clock the day and month buckets are computed from.
func WithStatsClock(now func() time.Time) StatsServiceOption {
	return func(s *statsService) {
		s.Now = now
	}
}

// NewStatsService creates a StatsService. A nil cache disables caching.
func NewStatsService(ledgerRepo portsrepo.LedgerEntryReader, schoolYears portssvc.SchoolYearSvc, c *cache.Cache[domain.DashboardStats], opts ...StatsServiceOption) portssvc.StatsService {
	s := &statsService{
		ledgerRepo:  ledgerRepo,
		schoolYears: schoolYears,
		cache:       c,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *statsService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.Clock()

	sy, err := s.schoolYears.CurrentSchoolYear(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.LogDebug(ctx, "No active school year, year bucket falls back to the calendar year")
		sy = nil
	}

	key := now.Format(dto.DateLayout)
	if sy != nil {
		key = sy.SchoolYearID + "|" + key
	}
	if cached, ok := s.cache.Get(key); ok {
		return &cached, nil
	}
	gen := s.cache.Generation()

	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	dayFrom, dayTo := accounting.DayRange(now)
	g.Go(func() error {
		ps, err := s.bucket(gctx, portsrepo.LedgerEntryFilter{}, dayFrom, dayTo)
		stats.Today = ps
		return err
	})

	monthFrom, monthTo := accounting.MonthRange(now)
	g.Go(func() error {
		ps, err := s.bucket(gctx, portsrepo.LedgerEntryFilter{}, monthFrom, monthTo)
		stats.Month = ps
		return err
	})

	g.Go(func() error {
		filter, from, to := yearBucket(sy, now)
		ps, err := s.bucket(gctx, filter, from, to)
		stats.Year = ps
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute statistics")
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	s.cache.SetIfGeneration(key, stats, gen)
	return &stats, nil
}

func (s *statsService) bucket(ctx context.Context, filter portsrepo.LedgerEntryFilter, from, to time.Time) (domain.PeriodStats, error) {
	filter.From = &from
	filter.To = &to
	entries, err := s.ledgerRepo.FindEntries(ctx, filter)
	if err != nil {
		return domain.PeriodStats{}, err
	}
	s.LogDebug(ctx, "Statistics bucket loaded",
		slog.String("from", from.Format(dto.DateLayout)),
		slog.String("to", to.Format(dto.DateLayout)),
		slog.Int("entries", len(entries)))
	return accounting.ComputePeriodStats(entries, from, to), nil
}

func (s *statsService) Invalidate() {
	s.cache.Purge()
}

// yearBucket returns the filter and bounds of the school year bucket, or of the
// calendar year of now when no school year is active.
func yearBucket(sy *domain.SchoolYear, now time.Time) (portsrepo.LedgerEntryFilter, time.Time, time.Time) {
	if sy == nil {
		from, to := accounting.YearRange(now)
		return portsrepo.LedgerEntryFilter{}, from, to
	}
	filter := portsrepo.LedgerEntryFilter{SchoolYearID: sy.SchoolYearID}
	if sy.StartDate.IsZero() || sy.EndDate.IsZero() {
		from, to := accounting.YearRange(now)
		return filter, from, to
	}
	return filter, sy.StartDate, sy.EndDate
}
