package domain

// FundSourcePolicy maps every expense kind to the fund source it must draw from.
// A nil value means the caller picks the source.
type FundSourcePolicy map[ExpenseKind]*FundSource

func fixed(src FundSource) *FundSource { return &src }

// DefaultFundSourcePolicy fixes the source of every expense kind.
var DefaultFundSourcePolicy = FundSourcePolicy{
	ExpenseOperational:   fixed(FundSourceTuition),
	ExpenseDonationGiven: fixed(FundSourceDonation),
	ExpenseOther:         fixed(FundSourceOtherIncome),
}

// IncomeFundSource returns the fund source credited by an income kind.
func IncomeFundSource(kind IncomeKind) FundSource {
	switch kind {
	case IncomeDonation:
		return FundSourceDonation
	case IncomeOther:
		return FundSourceOtherIncome
	default:
		return FundSourceTuition
	}
}

// ResolveExpenseSource returns the fund source of an expense. A fixed mapping always
// wins over the requested source; requested is only consulted for free-choice kinds.
// ok is false when the kind is free-choice and no valid source was requested, or
// when the kind is not part of the policy.
func (p FundSourcePolicy) ResolveExpenseSource(kind ExpenseKind, requested FundSource) (FundSource, bool) {
	src, known := p[kind]
	if !known {
		return "", false
	}
	if src != nil {
		return *src, true
	}
	if !requested.IsValid() {
		return "", false
	}
	return requested, true
}

// IsFixed reports whether the policy pins the source for kind.
func (p FundSourcePolicy) IsFixed(kind ExpenseKind) bool {
	src, ok := p[kind]
	return ok && src != nil
}
