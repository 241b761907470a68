package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeAllocationReport distributes the tuition income of [from, to] across the
// categories by percentage and compares each share with what was spent under the
// category name. Donations and other income are reported but never allocated.
func ComputeAllocationReport(from, to time.Time, entries []domain.LedgerEntry, categories []domain.AllocationCategory) domain.AllocationReport {
	report := domain.AllocationReport{
		PeriodStart:         DateOnly(from),
		PeriodEnd:           DateOnly(to),
		PerCategory:         make([]domain.CategoryAllocation, 0, len(categories)),
		TotalTuitionIncome:  decimal.Zero,
		TotalDonationIncome: decimal.Zero,
		TotalOtherIncome:    decimal.Zero,
		TotalAllocated:      decimal.Zero,
		TotalSpent:          decimal.Zero,
		TotalExpenses:       decimal.Zero,
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if !InDateRange(e.Date, from, to) {
			continue
		}
		switch e.Direction {
		case domain.DirectionIn:
			switch e.EffectiveFundSource() {
			case domain.FundSourceTuition:
				report.TotalTuitionIncome = report.TotalTuitionIncome.Add(e.Amount)
			case domain.FundSourceDonation:
				report.TotalDonationIncome = report.TotalDonationIncome.Add(e.Amount)
			case domain.FundSourceOtherIncome:
				report.TotalOtherIncome = report.TotalOtherIncome.Add(e.Amount)
			}
		case domain.DirectionOut:
			report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
			key := categoryKey(e.Category)
			spentByCategory[key] = spentByCategory[key].Add(e.Amount)
		}
	}

	sorted := make([]domain.AllocationCategory, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return sorted[i].Name < sorted[j].Name
	})

	for _, c := range sorted {
		allocated := report.TotalTuitionIncome.Mul(c.Percentage).Div(hundred)
		spent := spentByCategory[categoryKey(c.Name)]
		row := domain.CategoryAllocation{
			Category:    c.Name,
			Percentage:  c.Percentage,
			Allocated:   allocated,
			Spent:       spent,
			Variance:    allocated.Sub(spent),
			Utilization: Utilization(spent, allocated),
		}
		row.OverBudget = row.Utilization.GreaterThan(hundred)
		report.PerCategory = append(report.PerCategory, row)
		report.TotalAllocated = report.TotalAllocated.Add(allocated)
		report.TotalSpent = report.TotalSpent.Add(spent)
	}

	report.Unallocated = report.TotalTuitionIncome.Sub(report.TotalAllocated)
	report.Balance = report.TotalTuitionIncome.Sub(report.TotalExpenses)
	return report
}

// Utilization returns spent/allocated*100 rounded to two places, or zero when nothing was allocated.
func Utilization(spent, allocated decimal.Decimal) decimal.Decimal {
	if allocated.IsZero() {
		return decimal.Zero
	}
	return spent.Div(allocated).Mul(hundred).Round(2)
}

func categoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
