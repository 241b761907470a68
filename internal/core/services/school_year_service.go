package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
)

type schoolYearService struct {
	BaseService
	repo portsrepo.SchoolYearReader
}

// NewSchoolYearService creates a new SchoolYearSvc.
func NewSchoolYearService(repo portsrepo.SchoolYearReader) portssvc.SchoolYearSvc {
	return &schoolYearService{repo: repo}
}

func (s *schoolYearService) CurrentSchoolYear(ctx context.Context) (*domain.SchoolYear, error) {
	sy, err := s.repo.FindActiveSchoolYear(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve active school year")
		}
		return nil, fmt.Errorf("failed to resolve active school year: %w", err)
	}
	return sy, nil
}

func (s *schoolYearService) GetSchoolYear(ctx context.Context, schoolYearID string) (*domain.SchoolYear, error) {
	sy, err := s.repo.FindSchoolYearByID(ctx, schoolYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to find school year %s: %w", schoolYearID, err)
	}
	return sy, nil
}
