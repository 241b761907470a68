package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxPercentage = decimal.NewFromInt(100)

type allocationCategoryService struct {
	BaseService
	categoryRepo portsrepo.AllocationCategoryRepositoryFacade
}

// NewAllocationCategoryService creates a new AllocationCategorySvc.
func NewAllocationCategoryService(categoryRepo portsrepo.AllocationCategoryRepositoryFacade) portssvc.AllocationCategorySvc {
	return &allocationCategoryService{categoryRepo: categoryRepo}
}

func (s *allocationCategoryService) ListCategories(ctx context.Context) ([]domain.AllocationCategory, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list allocation categories")
		return nil, fmt.Errorf("failed to list allocation categories: %w", err)
	}
	return categories, nil
}

func (s *allocationCategoryService) CreateCategory(ctx context.Context, req dto.CreateAllocationCategoryRequest, caller domain.User) (*domain.AllocationCategory, error) {
	if err := s.RequirePrivileged(ctx, caller.Role, "configure allocation categories"); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := validateCategory(name, req.Percentage); err != nil {
		return nil, err
	}

	existing, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkCategorySet(existing, "", name, req.Percentage); err != nil {
		return nil, err
	}

	now := s.Clock()
	category := domain.AllocationCategory{
		CategoryID: uuid.NewString(),
		Name:       name,
		Percentage: req.Percentage,
		SortOrder:  req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save allocation category", slog.String("name", name))
		return nil, fmt.Errorf("failed to save allocation category: %w", err)
	}

	s.LogInfo(ctx, "Allocation category created",
		slog.String("category_id", category.CategoryID),
		slog.String("name", name),
		slog.String("percentage", category.Percentage.String()))
	return &category, nil
}

func (s *allocationCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateAllocationCategoryRequest, caller domain.User) (*domain.AllocationCategory, error) {
	if err := s.RequirePrivileged(ctx, caller.Role, "configure allocation categories"); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find allocation category %s: %w", categoryID, err)
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Percentage != nil {
		category.Percentage = *req.Percentage
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if err := validateCategory(category.Name, category.Percentage); err != nil {
		return nil, err
	}

	existing, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkCategorySet(existing, category.CategoryID, category.Name, category.Percentage); err != nil {
		return nil, err
	}

	category.LastUpdatedAt = s.Clock()
	category.LastUpdatedBy = caller.UserID
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update allocation category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update allocation category: %w", err)
	}

	s.LogInfo(ctx, "Allocation category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *allocationCategoryService) DeleteCategory(ctx context.Context, categoryID string, caller domain.User) error {
	if err := s.RequirePrivileged(ctx, caller.Role, "configure allocation categories"); err != nil {
		return err
	}

	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to find allocation category %s: %w", categoryID, err)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete allocation category", slog.String("category_id", categoryID))
		}
		return fmt.Errorf("failed to delete allocation category: %w", err)
	}

	s.LogInfo(ctx, "Allocation category deleted", slog.String("category_id", categoryID))
	return nil
}

func validateCategory(name string, percentage decimal.Decimal) error {
	if name == "" {
		return apperrors.NewFieldError("name", "is required")
	}
	if percentage.IsNegative() || percentage.GreaterThan(maxPercentage) {
		return apperrors.NewFieldError("percentage", "must be between 0 and 100")
	}
	return nil
}

// checkCategorySet verifies that names stay unique and percentages do not exceed
// 100 in total once the candidate replaces the category identified by selfID.
func checkCategorySet(existing []domain.AllocationCategory, selfID, name string, percentage decimal.Decimal) error {
	total := percentage
	for _, c := range existing {
		if c.CategoryID == selfID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return fmt.Errorf("%w: allocation category %q", apperrors.ErrDuplicate, name)
		}
		total = total.Add(c.Percentage)
	}
	if total.GreaterThan(maxPercentage) {
		return apperrors.NewFieldError("percentage",
			fmt.Sprintf("categories would total %s%%, above 100%%", total.String()))
	}
	return nil
}
