package domain

import "github.com/shopspring/decimal"

// PeriodStats aggregates ledger movements over one period.
type PeriodStats struct {
	Total        decimal.Decimal `json:"total"` // TotalEntries - TotalExits
	Count        int             `json:"count"`
	TotalEntries decimal.Decimal `json:"totalEntrees"`
	TotalExits   decimal.Decimal `json:"totalSorties"`
	CountEntries int             `json:"countEntrees"`
	CountExits   int             `json:"countSorties"`
}

// DashboardStats groups the today, month and school-year buckets.
type DashboardStats struct {
	Today PeriodStats `json:"today"`
	Month PeriodStats `json:"month"`
	Year  PeriodStats `json:"year"`
}
