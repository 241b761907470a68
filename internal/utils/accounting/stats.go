package accounting

import (
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputePeriodStats aggregates the entries whose date falls in [from, to].
func ComputePeriodStats(entries []domain.LedgerEntry, from, to time.Time) domain.PeriodStats {
	stats := domain.PeriodStats{
		Total:        decimal.Zero,
		TotalEntries: decimal.Zero,
		TotalExits:   decimal.Zero,
	}
	for _, e := range entries {
		if !InDateRange(e.Date, from, to) {
			continue
		}
		switch e.Direction {
		case domain.DirectionIn:
			stats.TotalEntries = stats.TotalEntries.Add(e.Amount)
			stats.CountEntries++
		case domain.DirectionOut:
			stats.TotalExits = stats.TotalExits.Add(e.Amount)
			stats.CountExits++
		default:
			continue
		}
		stats.Count++
	}
	stats.Total = stats.TotalEntries.Sub(stats.TotalExits)
	return stats
}
