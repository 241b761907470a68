package mapping

import (
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/models"
)

// ToModelAllocationCategory converts a domain AllocationCategory to a model AllocationCategory
func ToModelAllocationCategory(d domain.AllocationCategory) models.AllocationCategory {
	return models.AllocationCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Percentage:  d.Percentage,
		SortOrder:   d.SortOrder,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAllocationCategory converts a model AllocationCategory to a domain AllocationCategory
func ToDomainAllocationCategory(m models.AllocationCategory) domain.AllocationCategory {
	return domain.AllocationCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Percentage:  m.Percentage,
		SortOrder:   m.SortOrder,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAllocationCategorySlice converts a slice of model categories
func ToDomainAllocationCategorySlice(ms []models.AllocationCategory) []domain.AllocationCategory {
	ds := make([]domain.AllocationCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAllocationCategory(m)
	}
	return ds
}
