package mapping

import (
	"database/sql"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:        d.EntryID,
		EntryDate:      d.Date,
		Direction:      string(d.Direction),
		Amount:         d.Amount,
		Description:    d.Description,
		Category:       d.Category,
		FundSource:     nullString(string(d.FundSource)),
		SchoolYearID:   d.SchoolYearID,
		RecordedByID:   d.RecordedBy.UserID,
		RecordedByName: d.RecordedBy.DisplayName,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.IncomeKind != nil {
		m.IncomeKind = nullString(string(*d.IncomeKind))
	}
	if d.ExpenseKind != nil {
		m.ExpenseKind = nullString(string(*d.ExpenseKind))
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:      m.EntryID,
		Date:         m.EntryDate,
		Direction:    domain.Direction(m.Direction),
		Amount:       m.Amount,
		Description:  m.Description,
		Category:     m.Category,
		FundSource:   domain.FundSource(m.FundSource.String),
		SchoolYearID: m.SchoolYearID,
		RecordedBy:   domain.Actor{UserID: m.RecordedByID, DisplayName: m.RecordedByName},
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.IncomeKind.Valid {
		kind := domain.IncomeKind(m.IncomeKind.String)
		d.IncomeKind = &kind
	}
	if m.ExpenseKind.Valid {
		kind := domain.ExpenseKind(m.ExpenseKind.String)
		d.ExpenseKind = &kind
	}
	return d
}

// ToModelDeletedLedgerEntry converts a domain DeletedLedgerEntry to a model DeletedLedgerEntry
func ToModelDeletedLedgerEntry(d domain.DeletedLedgerEntry) models.DeletedLedgerEntry {
	return models.DeletedLedgerEntry{
		DeletedEntryID: d.DeletedEntryID,
		OriginalID:     d.OriginalID,
		DeletedAt:      d.DeletedAt,
		DeletedByID:    d.DeletedBy.UserID,
		DeletedByName:  d.DeletedBy.DisplayName,
		Entry:          ToModelLedgerEntry(d.Entry),
	}
}

// ToDomainDeletedLedgerEntry converts a model DeletedLedgerEntry to a domain DeletedLedgerEntry
func ToDomainDeletedLedgerEntry(m models.DeletedLedgerEntry) domain.DeletedLedgerEntry {
	entry := ToDomainLedgerEntry(m.Entry)
	entry.EntryID = m.OriginalID
	return domain.DeletedLedgerEntry{
		DeletedEntryID: m.DeletedEntryID,
		OriginalID:     m.OriginalID,
		DeletedAt:      m.DeletedAt,
		DeletedBy:      domain.Actor{UserID: m.DeletedByID, DisplayName: m.DeletedByName},
		Entry:          entry,
	}
}
