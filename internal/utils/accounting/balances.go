package accounting

import (
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBalances derives the per-source balances of a school year from its entry log.
// Entries are expected to be the non-deleted rows of that year; the result is a pure
// function of them, so no running total is ever stored.
func ComputeBalances(schoolYearID string, entries []domain.LedgerEntry) domain.FundBalances {
	sums := map[domain.FundSource]decimal.Decimal{
		domain.FundSourceTuition:     decimal.Zero,
		domain.FundSourceDonation:    decimal.Zero,
		domain.FundSourceOtherIncome: decimal.Zero,
	}

	for _, e := range entries {
		src := e.EffectiveFundSource()
		if _, ok := sums[src]; !ok {
			continue
		}
		switch e.Direction {
		case domain.DirectionIn:
			sums[src] = sums[src].Add(e.Amount)
		case domain.DirectionOut:
			sums[src] = sums[src].Sub(e.Amount)
		}
	}

	b := domain.FundBalances{
		SchoolYearID: schoolYearID,
		Tuition:      sums[domain.FundSourceTuition],
		Donation:     sums[domain.FundSourceDonation],
		OtherIncome:  sums[domain.FundSourceOtherIncome],
	}
	b.Total = b.Tuition.Add(b.Donation).Add(b.OtherIncome)
	return b
}

// NetTotal returns the sum of incoming amounts minus the sum of outgoing amounts,
// regardless of fund source.
func NetTotal(entries []domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Direction == domain.DirectionIn {
			total = total.Add(e.Amount)
		} else if e.Direction == domain.DirectionOut {
			total = total.Sub(e.Amount)
		}
	}
	return total
}
