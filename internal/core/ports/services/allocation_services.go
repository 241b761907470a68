package services

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
)

// AllocationCategorySvc manages the budget rubric configuration
type AllocationCategorySvc interface {
	ListCategories(ctx context.Context) ([]domain.AllocationCategory, error)
	CreateCategory(ctx context.Context, req dto.CreateAllocationCategoryRequest, caller domain.User) (*domain.AllocationCategory, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateAllocationCategoryRequest, caller domain.User) (*domain.AllocationCategory, error)
	DeleteCategory(ctx context.Context, categoryID string, caller domain.User) error
}
