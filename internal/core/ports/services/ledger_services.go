package services

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
)

// LedgerReaderSvc defines read operations over ledger entries
type LedgerReaderSvc interface {
	// GetEntry retrieves an active entry by its ID.
	GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a page of active entries of a school year (the active one by default).
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// ListDeletedEntries retrieves a page of the deleted history, newest deletion first.
	ListDeletedEntries(ctx context.Context, offset, limit int, search string) (*dto.ListDeletedEntriesResponse, error)
}

// LedgerWriterSvc defines the mutations of the ledger. Every successful mutation
// invalidates cached balances and statistics.
type LedgerWriterSvc interface {
	// CreateEntry validates, attributes and records a new movement.
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)

	// UpdateEntry applies a patch to the mutable fields of an entry.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)

	// DeleteEntry moves an entry into the deleted history.
	DeleteEntry(ctx context.Context, entryID string, userID string) error

	// PurgeDeletedEntry permanently removes a history row. Only privileged roles may do so.
	PurgeDeletedEntry(ctx context.Context, deletedEntryID string, callerRole domain.UserRole) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
