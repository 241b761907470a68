package services

import (
	"context"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
)

// BalanceService derives fund balances from the entry log
type BalanceService interface {
	// GetBalances returns the balances of a school year; an empty ID means the active year.
	GetBalances(ctx context.Context, schoolYearID string) (*domain.FundBalances, error)

	// Invalidate drops every cached balance.
	Invalidate()
}

// StatsService computes dashboard rollups
type StatsService interface {
	// GetStats returns the today, month and school-year buckets.
	GetStats(ctx context.Context) (*domain.DashboardStats, error)

	// Invalidate drops every cached rollup.
	Invalidate()
}

// ReportingService builds read-only reports
type ReportingService interface {
	// GetAllocationReport compares allocated and spent amounts per category over [from, to].
	GetAllocationReport(ctx context.Context, from, to time.Time) (*domain.AllocationReport, error)
}
