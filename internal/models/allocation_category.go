package models

import "github.com/shopspring/decimal"

// AllocationCategory is a row of allocation_categories.
type AllocationCategory struct {
	CategoryID string          `db:"category_id"`
	Name       string          `db:"name"`
	Percentage decimal.Decimal `db:"percentage"`
	SortOrder  int             `db:"sort_order"`
	AuditFields
}
