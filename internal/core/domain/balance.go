package domain

import "github.com/shopspring/decimal"

// FundBalances holds the available balance per fund source for one school year.
type FundBalances struct {
	SchoolYearID string          `json:"schoolYearID"`
	Tuition      decimal.Decimal `json:"tuition"`
	Donation     decimal.Decimal `json:"donation"`
	OtherIncome  decimal.Decimal `json:"otherIncome"`
	Total        decimal.Decimal `json:"total"`
}

// Of returns the balance of a single fund source.
func (b FundBalances) Of(src FundSource) decimal.Decimal {
	switch src {
	case FundSourceTuition:
		return b.Tuition
	case FundSourceDonation:
		return b.Donation
	case FundSourceOtherIncome:
		return b.OtherIncome
	default:
		return decimal.Zero
	}
}
