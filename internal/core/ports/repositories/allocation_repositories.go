package repositories

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
)

// AllocationCategoryReader defines read operations for allocation categories
type AllocationCategoryReader interface {
	// ListCategories returns every category ordered by sort order then name.
	ListCategories(ctx context.Context) ([]domain.AllocationCategory, error)

	// FindCategoryByID retrieves a category. Returns apperrors.ErrNotFound when absent.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.AllocationCategory, error)
}

// AllocationCategoryWriter defines write operations for allocation categories
type AllocationCategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.AllocationCategory) error
	UpdateCategory(ctx context.Context, category domain.AllocationCategory) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// AllocationCategoryRepositoryFacade combines all allocation category repository interfaces
type AllocationCategoryRepositoryFacade interface {
	AllocationCategoryReader
	AllocationCategoryWriter
}
