package mapping

import (
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		Role:        domain.UserRole(m.Role),
	}
}

// ToDomainSchoolYear converts a model SchoolYear to a domain SchoolYear
func ToDomainSchoolYear(m models.SchoolYear) domain.SchoolYear {
	return domain.SchoolYear{
		SchoolYearID: m.SchoolYearID,
		Label:        m.Label,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsActive:     m.IsActive,
	}
}
