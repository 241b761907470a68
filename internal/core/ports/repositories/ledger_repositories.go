package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
)

// LedgerEntryFilter narrows a query over active ledger entries.
// Zero values mean "no constraint"; a zero Limit returns every matching row.
type LedgerEntryFilter struct {
	SchoolYearID string
	From         *time.Time
	To           *time.Time
	Direction    *domain.Direction
	Search       string
	Offset       int
	Limit        int
}

// LedgerEntryReader defines read operations over active ledger entries
type LedgerEntryReader interface {
	// FindEntryByID retrieves an active entry. Returns apperrors.ErrNotFound when absent.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// FindEntries returns the entries matching the filter ordered by date then creation time, newest first.
	FindEntries(ctx context.Context, filter LedgerEntryFilter) ([]domain.LedgerEntry, error)

	// CountEntries counts the entries matching the filter, ignoring Offset and Limit.
	CountEntries(ctx context.Context, filter LedgerEntryFilter) (int, error)
}

// LedgerEntryWriter defines write operations over active ledger entries.
// New outgoing entries, and updates raising an outgoing amount, re-check the fund
// source balance inside the same database transaction and fail with
// *apperrors.InsufficientBalanceError.
type LedgerEntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntry persists the mutable fields of an existing entry.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// MoveEntryToHistory copies the entry into the deleted history and removes it
	// from the active table atomically.
	MoveEntryToHistory(ctx context.Context, deleted domain.DeletedLedgerEntry) error
}

// DeletedEntryStore defines operations over the deleted-entry history
type DeletedEntryStore interface {
	// ListDeletedEntries returns a page of history rows newest deletion first, and the total match count.
	ListDeletedEntries(ctx context.Context, offset, limit int, search string) ([]domain.DeletedLedgerEntry, int, error)

	// FindDeletedEntryByID retrieves a history row. Returns apperrors.ErrNotFound when absent.
	FindDeletedEntryByID(ctx context.Context, deletedEntryID string) (*domain.DeletedLedgerEntry, error)

	// FindDeletedEntryByOriginalID retrieves the latest history row of an entry that was
	// active under originalID. Returns apperrors.ErrNotFound when absent.
	FindDeletedEntryByOriginalID(ctx context.Context, originalID string) (*domain.DeletedLedgerEntry, error)

	// PurgeDeletedEntry permanently removes a history row.
	PurgeDeletedEntry(ctx context.Context, deletedEntryID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
	DeletedEntryStore
}
