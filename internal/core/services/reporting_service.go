package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerEntryReader
	categoryRepo portsrepo.AllocationCategoryReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(ledgerRepo portsrepo.LedgerEntryReader, categoryRepo portsrepo.AllocationCategoryReader) portssvc.ReportingService {
	return &reportingService{
		ledgerRepo:   ledgerRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *reportingService) GetAllocationReport(ctx context.Context, from, to time.Time) (*domain.AllocationReport, error) {
	from, to = accounting.DateOnly(from), accounting.DateOnly(to)
	if to.Before(from) {
		return nil, apperrors.NewFieldError("to", "must not be before from")
	}

	logger := s.GetLogger(ctx).With(
		slog.String("from", from.Format(dto.DateLayout)),
		slog.String("to", to.Format(dto.DateLayout)),
	)

	entries, err := s.ledgerRepo.FindEntries(ctx, portsrepo.LedgerEntryFilter{From: &from, To: &to})
	if err != nil {
		logger.Error("Failed to load entries for allocation report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load entries for allocation report: %w", err)
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("Failed to load allocation categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load allocation categories: %w", err)
	}

	report := accounting.ComputeAllocationReport(from, to, entries, categories)
	logger.Debug("Allocation report computed",
		slog.Int("entries", len(entries)),
		slog.Int("categories", len(categories)))
	return &report, nil
}
