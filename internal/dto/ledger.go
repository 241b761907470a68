package dto

import (
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted and returned by the API.
const DateLayout = "2006-01-02"

// CreateLedgerEntryRequest is the payload for recording a cash movement.
type CreateLedgerEntryRequest struct {
	Date         string              `json:"date" binding:"required,datetime=2006-01-02"`
	Direction    domain.Direction    `json:"direction" binding:"required,direction"`
	Amount       decimal.Decimal     `json:"amount"`
	Description  string              `json:"description" binding:"max=500"`
	Category     string              `json:"category" binding:"max=120"`
	IncomeKind   *domain.IncomeKind  `json:"incomeKind,omitempty" binding:"omitempty,income_kind"`
	ExpenseKind  *domain.ExpenseKind `json:"expenseKind,omitempty" binding:"omitempty,expense_kind"`
	FundSource   *domain.FundSource  `json:"fundSource,omitempty" binding:"omitempty,fund_source"` // only honoured for free-choice expense kinds
	SchoolYearID string              `json:"schoolYearID,omitempty"`                               // defaults to the active school year
}

// UpdateLedgerEntryRequest carries the mutable fields of an entry. Nil fields are left unchanged.
type UpdateLedgerEntryRequest struct {
	Date         *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Description  *string          `json:"description,omitempty" binding:"omitempty,max=500"`
	SchoolYearID *string          `json:"schoolYearID,omitempty"`
}

// ListEntriesParams defines the query parameters for listing active entries.
type ListEntriesParams struct {
	SchoolYearID string            `form:"schoolYearID"`
	Direction    *domain.Direction `form:"direction" binding:"omitempty,direction"`
	Search       string            `form:"search"`
	Offset       int               `form:"offset" binding:"omitempty,min=0"`
	Limit        int               `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ListDeletedEntriesParams defines the query parameters for the deleted history.
type ListDeletedEntriesParams struct {
	Search string `form:"search"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// LedgerEntryResponse is the API representation of a ledger entry.
type LedgerEntryResponse struct {
	EntryID         string              `json:"entryID"`
	Date            string              `json:"date"`
	Direction       domain.Direction    `json:"direction"`
	DirectionLabel  string              `json:"directionLabel"`
	Amount          decimal.Decimal     `json:"amount"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	IncomeKind      *domain.IncomeKind  `json:"incomeKind,omitempty"`
	ExpenseKind     *domain.ExpenseKind `json:"expenseKind,omitempty"`
	FundSource      domain.FundSource   `json:"fundSource"`
	FundSourceLabel string              `json:"fundSourceLabel"`
	SchoolYearID    string              `json:"schoolYearID"`
	RecordedBy      domain.Actor        `json:"recordedBy"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// ListEntriesResponse is a page of active entries.
type ListEntriesResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
	Offset  int                   `json:"offset"`
	Limit   int                   `json:"limit"`
}

// DeletedEntryResponse is the API representation of a deleted entry.
type DeletedEntryResponse struct {
	DeletedEntryID string              `json:"deletedEntryID"`
	OriginalID     string              `json:"originalID"`
	DeletedAt      time.Time           `json:"deletedAt"`
	DeletedBy      domain.Actor        `json:"deletedBy"`
	Entry          LedgerEntryResponse `json:"entry"`
}

// ListDeletedEntriesResponse is a page of the deleted history.
type ListDeletedEntriesResponse struct {
	Entries []DeletedEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
	Offset  int                    `json:"offset"`
	Limit   int                    `json:"limit"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its API representation.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	src := e.EffectiveFundSource()
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		Date:            e.Date.Format(DateLayout),
		Direction:       e.Direction,
		DirectionLabel:  e.Direction.Label(),
		Amount:          e.Amount,
		Description:     e.Description,
		Category:        e.Category,
		IncomeKind:      e.IncomeKind,
		ExpenseKind:     e.ExpenseKind,
		FundSource:      src,
		FundSourceLabel: src.DisplayName(),
		SchoolYearID:    e.SchoolYearID,
		RecordedBy:      e.RecordedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.LastUpdatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToLedgerEntryResponse(e)
	}
	return out
}

// ToDeletedEntryResponses converts a slice of domain.DeletedLedgerEntry.
func ToDeletedEntryResponses(entries []domain.DeletedLedgerEntry) []DeletedEntryResponse {
	out := make([]DeletedEntryResponse, len(entries))
	for i, d := range entries {
		out[i] = DeletedEntryResponse{
			DeletedEntryID: d.DeletedEntryID,
			OriginalID:     d.OriginalID,
			DeletedAt:      d.DeletedAt,
			DeletedBy:      d.DeletedBy,
			Entry:          ToLedgerEntryResponse(d.Entry),
		}
	}
	return out
}
