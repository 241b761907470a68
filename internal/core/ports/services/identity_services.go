package services

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
)

// IdentitySvc resolves the acting user
type IdentitySvc interface {
	// ResolveUser returns the identity and role of a user id.
	ResolveUser(ctx context.Context, userID string) (*domain.User, error)
}

// SchoolYearSvc resolves accounting periods. It is consulted once per operation;
// nothing about the active year is cached across requests.
type SchoolYearSvc interface {
	// CurrentSchoolYear returns the active school year.
	CurrentSchoolYear(ctx context.Context) (*domain.SchoolYear, error)

	// GetSchoolYear returns a school year by ID.
	GetSchoolYear(ctx context.Context, schoolYearID string) (*domain.SchoolYear, error)
}
