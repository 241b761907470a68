package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of ledger_entries.
// Kinds and fund source are nullable for rows recorded before they were tracked.
type LedgerEntry struct {
	EntryID        string          `db:"entry_id"`
	EntryDate      time.Time       `db:"entry_date"`
	Direction      string          `db:"direction"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	Category       string          `db:"category"`
	IncomeKind     sql.NullString  `db:"income_kind"`
	ExpenseKind    sql.NullString  `db:"expense_kind"`
	FundSource     sql.NullString  `db:"fund_source"`
	SchoolYearID   string          `db:"school_year_id"`
	RecordedByID   string          `db:"recorded_by_id"`
	RecordedByName string          `db:"recorded_by_name"`
	AuditFields
}

// DeletedLedgerEntry is a row of deleted_ledger_entries: a frozen copy of the entry
// plus who removed it and when.
type DeletedLedgerEntry struct {
	DeletedEntryID string    `db:"deleted_entry_id"`
	OriginalID     string    `db:"original_id"`
	DeletedAt      time.Time `db:"deleted_at"`
	DeletedByID    string    `db:"deleted_by_id"`
	DeletedByName  string    `db:"deleted_by_name"`
	Entry          LedgerEntry
}
