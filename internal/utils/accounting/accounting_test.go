package accounting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func income(amount int64, src domain.FundSource, date time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{Direction: domain.DirectionIn, Amount: decimal.NewFromInt(amount), FundSource: src, Date: date}
}

func expense(amount int64, src domain.FundSource, category string, date time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{Direction: domain.DirectionOut, Amount: decimal.NewFromInt(amount), FundSource: src, Category: category, Date: date}
}

func TestComputeBalances(t *testing.T) {
	d := day(2025, time.October, 1)
	entries := []domain.LedgerEntry{
		income(500, domain.FundSourceTuition, d),
		expense(200, domain.FundSourceTuition, "Fonctionnement", d),
		income(80, domain.FundSourceDonation, d),
		expense(30, domain.FundSourceDonation, "Dons", d),
		income(10, domain.FundSourceOtherIncome, d),
	}

	b := accounting.ComputeBalances("sy1", entries)

	assert.Equal(t, "sy1", b.SchoolYearID)
	assert.True(t, b.Tuition.Equal(decimal.NewFromInt(300)), "tuition: %s", b.Tuition)
	assert.True(t, b.Donation.Equal(decimal.NewFromInt(50)), "donation: %s", b.Donation)
	assert.True(t, b.OtherIncome.Equal(decimal.NewFromInt(10)), "other: %s", b.OtherIncome)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(360)), "total: %s", b.Total)
	assert.True(t, b.Total.Equal(accounting.NetTotal(entries)))
}

func TestComputeBalances_LegacyRowsFallIntoTuition(t *testing.T) {
	d := day(2024, time.March, 3)
	legacyIn := domain.LedgerEntry{Direction: domain.DirectionIn, Amount: decimal.NewFromInt(100), Date: d}
	legacyOut := domain.LedgerEntry{Direction: domain.DirectionOut, Amount: decimal.NewFromInt(40), Category: "Fonctionnement", Date: d}

	b := accounting.ComputeBalances("sy", []domain.LedgerEntry{legacyIn, legacyOut})

	assert.True(t, b.Tuition.Equal(decimal.NewFromInt(60)))
	assert.True(t, b.Donation.IsZero())
	assert.True(t, b.Total.Equal(decimal.NewFromInt(60)))
}

func TestComputeBalances_Idempotent(t *testing.T) {
	d := day(2025, time.January, 5)
	entries := []domain.LedgerEntry{income(10, domain.FundSourceTuition, d), expense(3, domain.FundSourceTuition, "x", d)}
	assert.Equal(t, accounting.ComputeBalances("a", entries), accounting.ComputeBalances("a", entries))
}

func TestValidateWithdrawal(t *testing.T) {
	balances := domain.FundBalances{Tuition: decimal.NewFromInt(100), Donation: decimal.Zero, OtherIncome: decimal.Zero}

	tests := []struct {
		name      string
		candidate domain.LedgerEntry
		wantErr   bool
	}{
		{name: "exceeds tuition", candidate: expense(150, domain.FundSourceTuition, "Fonctionnement", time.Now()), wantErr: true},
		{name: "exactly the balance", candidate: expense(100, domain.FundSourceTuition, "Fonctionnement", time.Now())},
		{name: "empty donation pool", candidate: expense(50, domain.FundSourceDonation, "Dons", time.Now()), wantErr: true},
		{name: "income never checked", candidate: income(1000, domain.FundSourceDonation, time.Now())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateWithdrawal(tt.candidate, balances)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInsufficientBalance))
			var ib *apperrors.InsufficientBalanceError
			require.True(t, errors.As(err, &ib))
			assert.Equal(t, string(tt.candidate.FundSource), ib.Source)
			assert.True(t, ib.Requested.Equal(tt.candidate.Amount))
			assert.True(t, ib.Available.Equal(balances.Of(tt.candidate.FundSource)))
		})
	}
}

func TestValidateWithdrawal_ReportsSourceAvailableAndRequested(t *testing.T) {
	balances := domain.FundBalances{Tuition: decimal.NewFromInt(100)}
	err := accounting.ValidateWithdrawal(expense(150, domain.FundSourceTuition, "Fonctionnement", time.Now()), balances)

	var ib *apperrors.InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, "tuition", ib.Source)
	assert.Equal(t, "100.00", ib.Available.StringFixed(2))
	assert.Equal(t, "150.00", ib.Requested.StringFixed(2))
	assert.Contains(t, err.Error(), "Tuition Fees")
}

func TestComputePeriodStats(t *testing.T) {
	entries := []domain.LedgerEntry{
		income(500, domain.FundSourceTuition, day(2025, time.October, 10)),
		expense(200, domain.FundSourceTuition, "Fonctionnement", day(2025, time.October, 10)),
		income(70, domain.FundSourceDonation, day(2025, time.October, 2)),
		income(999, domain.FundSourceTuition, day(2025, time.September, 30)),
	}

	today := accounting.ComputePeriodStats(entries, day(2025, time.October, 10), day(2025, time.October, 10))
	assert.Equal(t, 2, today.Count)
	assert.Equal(t, 1, today.CountEntries)
	assert.Equal(t, 1, today.CountExits)
	assert.True(t, today.Total.Equal(decimal.NewFromInt(300)))

	from, to := accounting.MonthRange(day(2025, time.October, 10))
	month := accounting.ComputePeriodStats(entries, from, to)
	assert.Equal(t, 3, month.Count)
	assert.True(t, month.TotalEntries.Equal(decimal.NewFromInt(570)))
	assert.True(t, month.TotalExits.Equal(decimal.NewFromInt(200)))
	assert.True(t, month.Total.Equal(decimal.NewFromInt(370)))
}

func TestPeriodRanges(t *testing.T) {
	now := time.Date(2024, time.February, 15, 17, 45, 0, 0, time.UTC)

	from, to := accounting.MonthRange(now)
	assert.Equal(t, day(2024, time.February, 1), from)
	assert.Equal(t, day(2024, time.February, 29), to)

	from, to = accounting.DayRange(now)
	assert.Equal(t, day(2024, time.February, 15), from)
	assert.Equal(t, from, to)

	from, to = accounting.YearRange(now)
	assert.Equal(t, day(2024, time.January, 1), from)
	assert.Equal(t, day(2024, time.December, 31), to)

	assert.True(t, accounting.InDateRange(now, from, to))
	assert.False(t, accounting.InDateRange(day(2025, time.January, 1), from, to))
}

func TestComputeAllocationReport_Reconciles(t *testing.T) {
	d := day(2025, time.November, 3)
	categories := []domain.AllocationCategory{
		{Name: "Personnel Costs", Percentage: decimal.NewFromInt(60), SortOrder: 1},
		{Name: "Fonctionnement", Percentage: decimal.NewFromInt(30), SortOrder: 2},
		{Name: "Investissement", Percentage: decimal.NewFromInt(10), SortOrder: 3},
	}
	entries := []domain.LedgerEntry{
		income(1000, domain.FundSourceTuition, d),
		income(400, domain.FundSourceDonation, d),
		income(50, domain.FundSourceOtherIncome, d),
		expense(450, domain.FundSourceTuition, "Personnel Costs", d),
		expense(350, domain.FundSourceTuition, "fonctionnement ", d),
		expense(20, domain.FundSourceDonation, "Dons", d),
		income(5000, domain.FundSourceTuition, day(2025, time.December, 1)),
	}

	r := accounting.ComputeAllocationReport(day(2025, time.November, 1), day(2025, time.November, 30), entries, categories)

	assert.True(t, r.TotalTuitionIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, r.TotalDonationIncome.Equal(decimal.NewFromInt(400)))
	assert.True(t, r.TotalOtherIncome.Equal(decimal.NewFromInt(50)))
	assert.True(t, r.TotalExpenses.Equal(decimal.NewFromInt(820)))
	assert.True(t, r.Balance.Equal(decimal.NewFromInt(180)))
	assert.True(t, r.TotalAllocated.Equal(r.TotalTuitionIncome))
	assert.True(t, r.Unallocated.IsZero())

	require.Len(t, r.PerCategory, 3)
	sum := decimal.Zero
	for _, row := range r.PerCategory {
		sum = sum.Add(row.Allocated)
		assert.True(t, row.Utilization.Equal(accounting.Utilization(row.Spent, row.Allocated)))
		assert.True(t, row.Variance.Equal(row.Allocated.Sub(row.Spent)))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1000)))

	personnel := r.PerCategory[0]
	assert.Equal(t, "Personnel Costs", personnel.Category)
	assert.True(t, personnel.Allocated.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, "75", personnel.Utilization.String())
	assert.False(t, personnel.OverBudget)

	fonctionnement := r.PerCategory[1]
	assert.True(t, fonctionnement.Spent.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, "116.67", fonctionnement.Utilization.String())
	assert.True(t, fonctionnement.OverBudget)

	invest := r.PerCategory[2]
	assert.True(t, invest.Utilization.IsZero())
}

func TestComputeAllocationReport_NoIncome(t *testing.T) {
	categories := []domain.AllocationCategory{{Name: "Fonctionnement", Percentage: decimal.NewFromInt(50)}}
	entries := []domain.LedgerEntry{expense(10, domain.FundSourceTuition, "Fonctionnement", day(2025, time.May, 2))}

	r := accounting.ComputeAllocationReport(day(2025, time.May, 1), day(2025, time.May, 31), entries, categories)

	require.Len(t, r.PerCategory, 1)
	assert.True(t, r.PerCategory[0].Allocated.IsZero())
	assert.True(t, r.PerCategory[0].Utilization.IsZero())
	assert.False(t, r.PerCategory[0].OverBudget)
	assert.True(t, r.Balance.Equal(decimal.NewFromInt(-10)))
}
