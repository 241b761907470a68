package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether money comes in or goes out.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Label returns the label used in listings and searched by the deleted-history filter.
func (d Direction) Label() string {
	switch d {
	case DirectionIn:
		return "Entrée"
	case DirectionOut:
		return "Sortie"
	default:
		return string(d)
	}
}

// IsValid reports whether d is in or out.
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// IncomeKind qualifies an incoming movement.
type IncomeKind string

const (
	IncomeTuition  IncomeKind = "tuition"
	IncomeDonation IncomeKind = "donation"
	IncomeOther    IncomeKind = "other"
)

// IsValid reports whether k is a known income kind.
func (k IncomeKind) IsValid() bool {
	switch k {
	case IncomeTuition, IncomeDonation, IncomeOther:
		return true
	}
	return false
}

// ExpenseKind qualifies an outgoing movement.
type ExpenseKind string

const (
	ExpenseOperational   ExpenseKind = "operational"
	ExpenseDonationGiven ExpenseKind = "donation_given"
	ExpenseOther         ExpenseKind = "other"
)

// IsValid reports whether k is a known expense kind.
func (k ExpenseKind) IsValid() bool {
	switch k {
	case ExpenseOperational, ExpenseDonationGiven, ExpenseOther:
		return true
	}
	return false
}

// LedgerEntry is one recorded cash movement.
type LedgerEntry struct {
	EntryID      string          `json:"entryID"`
	Date         time.Time       `json:"date"`
	Direction    Direction       `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	IncomeKind   *IncomeKind     `json:"incomeKind,omitempty"`  // set only for Direction in
	ExpenseKind  *ExpenseKind    `json:"expenseKind,omitempty"` // set only for Direction out
	FundSource   FundSource      `json:"fundSource"`
	SchoolYearID string          `json:"schoolYearID"`
	RecordedBy   Actor           `json:"recordedBy"`
	AuditFields
}

// EffectiveIncomeKind returns the income kind, treating legacy rows without one as tuition.
func (e LedgerEntry) EffectiveIncomeKind() IncomeKind {
	if e.IncomeKind == nil || *e.IncomeKind == "" {
		return IncomeTuition
	}
	return *e.IncomeKind
}

// EffectiveExpenseKind returns the expense kind, treating legacy rows without one as operational.
func (e LedgerEntry) EffectiveExpenseKind() ExpenseKind {
	if e.ExpenseKind == nil || *e.ExpenseKind == "" {
		return ExpenseOperational
	}
	return *e.ExpenseKind
}

// EffectiveFundSource returns the stored fund source, or the one implied by the
// entry kinds for rows recorded before sources were tracked.
func (e LedgerEntry) EffectiveFundSource() FundSource {
	if e.FundSource != "" {
		return e.FundSource
	}
	if e.Direction == DirectionIn {
		return IncomeFundSource(e.EffectiveIncomeKind())
	}
	if src, ok := DefaultFundSourcePolicy[e.EffectiveExpenseKind()]; ok && src != nil {
		return *src
	}
	return FundSourceTuition
}

// DeletedLedgerEntry is the immutable copy of a LedgerEntry taken when it was deleted.
type DeletedLedgerEntry struct {
	DeletedEntryID string      `json:"deletedEntryID"`
	OriginalID     string      `json:"originalID"`
	DeletedAt      time.Time   `json:"deletedAt"`
	DeletedBy      Actor       `json:"deletedBy"`
	Entry          LedgerEntry `json:"entry"`
}

// LedgerEntryPatch lists the fields of an entry that may change after creation.
// Direction, kinds, fund source and school year are fixed once recorded.
type LedgerEntryPatch struct {
	Date         *time.Time
	Amount       *decimal.Decimal
	Description  *string
	SchoolYearID *string // rejected when it differs from the stored value
}
