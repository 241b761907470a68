package accounting

import (
	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateWithdrawal checks that an outgoing entry does not exceed the available balance
// of its fund source. Incoming entries always pass.
func ValidateWithdrawal(candidate domain.LedgerEntry, balances domain.FundBalances) error {
	if candidate.Direction != domain.DirectionOut {
		return nil
	}
	src := candidate.EffectiveFundSource()
	return CheckAvailable(src, balances.Of(src), candidate.Amount)
}

// CheckAvailable rejects requested when it is greater than available.
func CheckAvailable(src domain.FundSource, available, requested decimal.Decimal) error {
	if requested.GreaterThan(available) {
		return &apperrors.InsufficientBalanceError{
			Source:      string(src),
			SourceLabel: src.DisplayName(),
			Available:   available,
			Requested:   requested,
		}
	}
	return nil
}
