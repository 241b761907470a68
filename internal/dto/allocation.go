package dto

import "github.com/shopspring/decimal"

// CreateAllocationCategoryRequest is the payload for adding a budget rubric.
type CreateAllocationCategoryRequest struct {
	Name       string          `json:"name" binding:"required,max=120"`
	Percentage decimal.Decimal `json:"percentage"`
	SortOrder  int             `json:"sortOrder" binding:"omitempty,min=0"`
}

// UpdateAllocationCategoryRequest carries the mutable fields of a rubric. Nil fields are left unchanged.
type UpdateAllocationCategoryRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,max=120"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	SortOrder  *int             `json:"sortOrder,omitempty" binding:"omitempty,min=0"`
}

// AllocationReportParams defines the query parameters of the allocation report.
type AllocationReportParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
