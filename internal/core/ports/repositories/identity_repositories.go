package repositories

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
)

// UserReader resolves user identities for audit snapshots and role checks
type UserReader interface {
	// FindUserByID retrieves a user. Returns apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// SchoolYearReader resolves accounting periods
type SchoolYearReader interface {
	// FindActiveSchoolYear returns the school year new entries are stamped with.
	// Returns apperrors.ErrNotFound when no year is active.
	FindActiveSchoolYear(ctx context.Context) (*domain.SchoolYear, error)

	// FindSchoolYearByID retrieves a school year. Returns apperrors.ErrNotFound when absent.
	FindSchoolYearByID(ctx context.Context, schoolYearID string) (*domain.SchoolYear, error)
}
