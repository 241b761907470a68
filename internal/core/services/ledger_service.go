package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/statemachine"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// LedgerService records and maintains ledger entries.
type LedgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	identity    portssvc.IdentitySvc
	schoolYears portssvc.SchoolYearSvc
	balances    portssvc.BalanceService
	policy      domain.FundSourcePolicy
	invalidate  []func()
}

// LedgerServiceOption is a function that configures a LedgerService
type LedgerServiceOption func(*LedgerService)

// WithFundSourcePolicy replaces the expense kind to fund source table.
func WithFundSourcePolicy(policy domain.FundSourcePolicy) LedgerServiceOption {
	return func(s *LedgerService) {
		s.policy = policy
	}
}

// WithClock sets the clock used for audit timestamps.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *LedgerService) {
		s.Now = now
	}
}

// WithInvalidators registers callbacks run after every successful mutation.
func WithInvalidators(fns ...func()) LedgerServiceOption {
	return func(s *LedgerService) {
		s.invalidate = append(s.invalidate, fns...)
	}
}

// NewLedgerService creates a new LedgerService. The balance service is used to
// validate withdrawals and is invalidated after every mutation.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	identity portssvc.IdentitySvc,
	schoolYears portssvc.SchoolYearSvc,
	balances portssvc.BalanceService,
	opts ...LedgerServiceOption,
) *LedgerService {
	s := &LedgerService{
		ledgerRepo:  ledgerRepo,
		identity:    identity,
		schoolYears: schoolYears,
		balances:    balances,
		policy:      domain.DefaultFundSourcePolicy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEntry validates, attributes and records a new movement.
func (s *LedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx).With(slog.String("user_id", userID), slog.String("direction", string(req.Direction)))

	entry, err := s.buildEntry(req)
	if err != nil {
		logger.Warn("Rejected invalid ledger entry", slog.String("error", err.Error()))
		return nil, err
	}

	schoolYearID, err := s.resolveSchoolYear(ctx, req.SchoolYearID)
	if err != nil {
		return nil, err
	}
	entry.SchoolYearID = schoolYearID

	user, err := s.identity.ResolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entry.Direction == domain.DirectionOut {
		balances, err := s.balances.GetBalances(ctx, schoolYearID)
		if err != nil {
			return nil, err
		}
		if err := accounting.ValidateWithdrawal(entry, *balances); err != nil {
			s.rejectWithdrawal(ctx, entry, err)
			return nil, err
		}
	}

	now := s.Clock()
	entry.EntryID = uuid.NewString()
	entry.RecordedBy = user.Actor()
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     user.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: user.UserID,
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.rejectWithdrawal(ctx, entry, err)
			return nil, err
		}
		logger.Error("Failed to save ledger entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}
	s.afterMutation()

	entriesRecorded.WithLabelValues(string(entry.Direction), string(entry.FundSource)).Inc()
	logger.Info("Ledger entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("fund_source", string(entry.FundSource)),
		slog.String("amount", entry.Amount.StringFixed(2)),
		slog.String("school_year_id", entry.SchoolYearID))
	return &entry, nil
}

// UpdateEntry applies a patch to the date, amount and description of an entry.
func (s *LedgerService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx).With(slog.String("user_id", userID), slog.String("entry_id", entryID))

	patch, err := parsePatch(req)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load ledger entry", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	previousAmount := entry.Amount

	if patch.SchoolYearID != nil && *patch.SchoolYearID != entry.SchoolYearID {
		return nil, apperrors.NewFieldError("schoolYearID", "cannot be changed once recorded")
	}
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.Amount != nil {
		entry.Amount = *patch.Amount
	}
	if patch.Description != nil {
		entry.Description = strings.TrimSpace(*patch.Description)
	}
	if err := validateMerged(*entry); err != nil {
		return nil, err
	}

	user, err := s.identity.ResolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entry.Direction == domain.DirectionOut && entry.Amount.GreaterThan(previousAmount) {
		balances, err := s.balances.GetBalances(ctx, entry.SchoolYearID)
		if err != nil {
			return nil, err
		}
		src := entry.EffectiveFundSource()
		available := balances.Of(src).Add(previousAmount)
		if err := accounting.CheckAvailable(src, available, entry.Amount); err != nil {
			s.rejectWithdrawal(ctx, *entry, err)
			return nil, err
		}
	}

	entry.LastUpdatedAt = s.Clock()
	entry.LastUpdatedBy = user.UserID
	if err := s.ledgerRepo.UpdateEntry(ctx, *entry); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.rejectWithdrawal(ctx, *entry, err)
			return nil, err
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update ledger entry", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}
	s.afterMutation()

	logger.Info("Ledger entry updated", slog.String("amount", entry.Amount.StringFixed(2)))
	return entry, nil
}

// DeleteEntry moves an entry into the deleted history, stamping who deleted it.
func (s *LedgerService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	logger := s.GetLogger(ctx).With(slog.String("user_id", userID), slog.String("entry_id", entryID))

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	state := statemachine.EntryActive
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load ledger entry", slog.String("error", err.Error()))
			return fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
		}
		if state, err = s.archivedState(ctx, entryID); err != nil {
			return err
		}
	}

	if err := statemachine.NewEntryFSM(state).Delete(ctx); err != nil {
		return lifecycleError(state, entryID, err)
	}

	user, err := s.identity.ResolveUser(ctx, userID)
	if err != nil {
		return err
	}

	deleted := domain.DeletedLedgerEntry{
		DeletedEntryID: uuid.NewString(),
		OriginalID:     entry.EntryID,
		DeletedAt:      s.Clock(),
		DeletedBy:      user.Actor(),
		Entry:          *entry,
	}
	if err := s.ledgerRepo.MoveEntryToHistory(ctx, deleted); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to move ledger entry to history", slog.String("error", err.Error()))
		}
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	s.afterMutation()

	entriesDeleted.Inc()
	logger.Info("Ledger entry deleted", slog.String("deleted_entry_id", deleted.DeletedEntryID))
	return nil
}

// PurgeDeletedEntry permanently removes a history row. Only a director or an admin may purge.
func (s *LedgerService) PurgeDeletedEntry(ctx context.Context, deletedEntryID string, callerRole domain.UserRole) error {
	if err := s.RequirePrivileged(ctx, callerRole, "purge deleted entries"); err != nil {
		return err
	}

	state := statemachine.EntryDeleted
	if _, err := s.ledgerRepo.FindDeletedEntryByID(ctx, deletedEntryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to find deleted entry %s: %w", deletedEntryID, err)
		}
		if state, err = s.activeState(ctx, deletedEntryID); err != nil {
			return err
		}
	}

	if err := statemachine.NewEntryFSM(state).Purge(ctx); err != nil {
		return lifecycleError(state, deletedEntryID, err)
	}

	if err := s.ledgerRepo.PurgeDeletedEntry(ctx, deletedEntryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to purge deleted entry", slog.String("deleted_entry_id", deletedEntryID))
		}
		return fmt.Errorf("failed to purge deleted entry: %w", err)
	}
	s.afterMutation()

	entriesPurged.Inc()
	s.LogInfo(ctx, "Deleted entry purged",
		slog.String("deleted_entry_id", deletedEntryID),
		slog.String("role", string(callerRole)))
	return nil
}

// GetEntry retrieves an active entry by its ID.
func (s *LedgerService) GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves a page of active entries of a school year, newest first.
func (s *LedgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	schoolYearID, err := s.resolveSchoolYear(ctx, params.SchoolYearID)
	if err != nil {
		return nil, err
	}
	offset, limit := normalizePage(params.Offset, params.Limit)

	filter := portsrepo.LedgerEntryFilter{
		SchoolYearID: schoolYearID,
		Direction:    params.Direction,
		Search:       strings.TrimSpace(params.Search),
		Offset:       offset,
		Limit:        limit,
	}
	entries, err := s.ledgerRepo.FindEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("school_year_id", schoolYearID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	total, err := s.ledgerRepo.CountEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count ledger entries", slog.String("school_year_id", schoolYearID))
		return nil, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries: dto.ToLedgerEntryResponses(entries),
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	}, nil
}

// ListDeletedEntries retrieves a page of the deleted history, newest deletion first.
func (s *LedgerService) ListDeletedEntries(ctx context.Context, offset, limit int, search string) (*dto.ListDeletedEntriesResponse, error) {
	offset, limit = normalizePage(offset, limit)
	entries, total, err := s.ledgerRepo.ListDeletedEntries(ctx, offset, limit, strings.TrimSpace(search))
	if err != nil {
		s.LogError(ctx, err, "Failed to list deleted entries")
		return nil, fmt.Errorf("failed to list deleted entries: %w", err)
	}
	return &dto.ListDeletedEntriesResponse{
		Entries: dto.ToDeletedEntryResponses(entries),
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	}, nil
}

// buildEntry validates a creation request and attributes the fund source.
func (s *LedgerService) buildEntry(req dto.CreateLedgerEntryRequest) (domain.LedgerEntry, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	entry := domain.LedgerEntry{
		Date:        date,
		Direction:   req.Direction,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
	}

	switch req.Direction {
	case domain.DirectionIn:
		kind := domain.IncomeTuition
		if req.IncomeKind != nil && *req.IncomeKind != "" {
			kind = *req.IncomeKind
		}
		if !kind.IsValid() {
			return domain.LedgerEntry{}, apperrors.NewFieldError("incomeKind", "is not a known income kind")
		}
		entry.IncomeKind = &kind
		entry.FundSource = domain.IncomeFundSource(kind)

	case domain.DirectionOut:
		kind := domain.ExpenseOperational
		if req.ExpenseKind != nil && *req.ExpenseKind != "" {
			kind = *req.ExpenseKind
		}
		if _, known := s.policy[kind]; !known {
			return domain.LedgerEntry{}, apperrors.NewFieldError("expenseKind", "is not a known expense kind")
		}
		var requested domain.FundSource
		if req.FundSource != nil {
			requested = *req.FundSource
		}
		src, ok := s.policy.ResolveExpenseSource(kind, requested)
		if !ok {
			return domain.LedgerEntry{}, apperrors.NewFieldError("fundSource", "a fund source is required for this expense kind")
		}
		entry.ExpenseKind = &kind
		entry.FundSource = src

	default:
		return domain.LedgerEntry{}, apperrors.NewFieldError("direction", "must be in or out")
	}

	if err := validateMerged(entry); err != nil {
		return domain.LedgerEntry{}, err
	}
	return entry, nil
}

// resolveSchoolYear returns requested when it names an existing school year,
// or the active school year when requested is empty.
func (s *LedgerService) resolveSchoolYear(ctx context.Context, requested string) (string, error) {
	if requested == "" {
		sy, err := s.schoolYears.CurrentSchoolYear(ctx)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", apperrors.NewFieldError("schoolYearID", "no school year is active")
			}
			return "", err
		}
		return sy.SchoolYearID, nil
	}
	sy, err := s.schoolYears.GetSchoolYear(ctx, requested)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewFieldError("schoolYearID", "is not a known school year")
		}
		return "", err
	}
	return sy.SchoolYearID, nil
}

// archivedState is the lifecycle state of an entry ID missing from the active table.
func (s *LedgerService) archivedState(ctx context.Context, entryID string) (string, error) {
	_, err := s.ledgerRepo.FindDeletedEntryByOriginalID(ctx, entryID)
	switch {
	case err == nil:
		return statemachine.EntryDeleted, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return statemachine.EntryPurged, nil
	default:
		s.LogError(ctx, err, "Failed to look up deleted history", slog.String("entry_id", entryID))
		return "", fmt.Errorf("failed to find deleted entry of %s: %w", entryID, err)
	}
}

// activeState is the lifecycle state of an ID missing from the deleted history.
// Callers purging by an active entry ID get EntryActive.
func (s *LedgerService) activeState(ctx context.Context, id string) (string, error) {
	_, err := s.ledgerRepo.FindEntryByID(ctx, id)
	switch {
	case err == nil:
		return statemachine.EntryActive, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return statemachine.EntryPurged, nil
	default:
		s.LogError(ctx, err, "Failed to look up ledger entry", slog.String("entry_id", id))
		return "", fmt.Errorf("failed to find ledger entry %s: %w", id, err)
	}
}

// lifecycleError maps a rejected transition: nothing is left of a purged entry,
// any other refusal is a client error.
func lifecycleError(state, id string, err error) error {
	if state == statemachine.EntryPurged {
		return fmt.Errorf("entry %s: %w", id, apperrors.ErrNotFound)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

func (s *LedgerService) rejectWithdrawal(ctx context.Context, entry domain.LedgerEntry, err error) {
	withdrawalsRejected.WithLabelValues(string(entry.EffectiveFundSource())).Inc()
	s.LogWarn(ctx, "Withdrawal rejected",
		slog.String("fund_source", string(entry.EffectiveFundSource())),
		slog.String("amount", entry.Amount.StringFixed(2)),
		slog.String("reason", err.Error()))
}

func (s *LedgerService) afterMutation() {
	if s.balances != nil {
		s.balances.Invalidate()
	}
	for _, fn := range s.invalidate {
		fn()
	}
}

// validateMerged applies the rules every stored entry must satisfy.
func validateMerged(e domain.LedgerEntry) error {
	if e.Date.IsZero() {
		return apperrors.NewFieldError("date", "is required")
	}
	if !e.Amount.IsPositive() {
		return apperrors.NewFieldError("amount", "must be a positive number")
	}
	if !e.Amount.Equal(e.Amount.Truncate(2)) {
		return apperrors.NewFieldError("amount", "must have at most two decimals")
	}
	if e.Direction == domain.DirectionOut && e.Category == "" {
		return apperrors.NewFieldError("category", "is required for an outgoing entry")
	}
	return nil
}

func parsePatch(req dto.UpdateLedgerEntryRequest) (domain.LedgerEntryPatch, error) {
	patch := domain.LedgerEntryPatch{
		Amount:       req.Amount,
		Description:  req.Description,
		SchoolYearID: req.SchoolYearID,
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return domain.LedgerEntryPatch{}, err
		}
		patch.Date = &date
	}
	return patch, nil
}

func parseDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, apperrors.NewFieldError(field, "is required")
	}
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewFieldError(field, "must be a date formatted as YYYY-MM-DD")
	}
	return t, nil
}

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}
