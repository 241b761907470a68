package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationCategory is a budget rubric entitled to a percentage of tuition income.
type AllocationCategory struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"` // 0-100
	SortOrder  int             `json:"sortOrder"`
	AuditFields
}

// CategoryAllocation is one row of the allocation report.
type CategoryAllocation struct {
	Category    string          `json:"category"`
	Percentage  decimal.Decimal `json:"percentage"`
	Allocated   decimal.Decimal `json:"allocated"`
	Spent       decimal.Decimal `json:"spent"`
	Variance    decimal.Decimal `json:"variance"`
	Utilization decimal.Decimal `json:"utilization"` // spent / allocated * 100
	OverBudget  bool            `json:"overBudget"`
}

// AllocationReport compares allocated and spent amounts per category for a period.
type AllocationReport struct {
	PeriodStart         time.Time            `json:"periodStart"`
	PeriodEnd           time.Time            `json:"periodEnd"`
	PerCategory         []CategoryAllocation `json:"perCategory"`
	TotalTuitionIncome  decimal.Decimal      `json:"totalTuitionIncome"`
	TotalDonationIncome decimal.Decimal      `json:"totalDonationIncome"`
	TotalOtherIncome    decimal.Decimal      `json:"totalOtherIncome"`
	TotalAllocated      decimal.Decimal      `json:"totalAllocated"`
	Unallocated         decimal.Decimal      `json:"unallocated"`
	TotalSpent          decimal.Decimal      `json:"totalSpent"` // spent in configured categories
	TotalExpenses       decimal.Decimal      `json:"totalExpenses"`
	Balance             decimal.Decimal      `json:"balance"` // tuition income minus all expenses
}
