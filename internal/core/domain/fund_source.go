package domain

// FundSource identifies the pool a ledger entry draws from or adds to.
type FundSource string

const (
	FundSourceTuition     FundSource = "tuition"
	FundSourceDonation    FundSource = "donation"
	FundSourceOtherIncome FundSource = "other_income"
)

// FundSourceInfo is the display metadata of a fund source.
type FundSourceInfo struct {
	Source      FundSource `json:"source"`
	DisplayName string     `json:"displayName"`
	Order       int        `json:"order"`
}

var fundSourceRegistry = []FundSourceInfo{
	{Source: FundSourceTuition, DisplayName: "Tuition Fees", Order: 1},
	{Source: FundSourceDonation, DisplayName: "Donations", Order: 2},
	{Source: FundSourceOtherIncome, DisplayName: "Other Income", Order: 3},
}

// FundSources returns the recognized fund sources in display order.
func FundSources() []FundSourceInfo {
	out := make([]FundSourceInfo, len(fundSourceRegistry))
	copy(out, fundSourceRegistry)
	return out
}

// DisplayName returns the human label of a fund source, or the raw value when unknown.
func (f FundSource) DisplayName() string {
	for _, info := range fundSourceRegistry {
		if info.Source == f {
			return info.DisplayName
		}
	}
	return string(f)
}

// IsValid reports whether f is one of the registered fund sources.
func (f FundSource) IsValid() bool {
	for _, info := range fundSourceRegistry {
		if info.Source == f {
			return true
		}
	}
	return false
}
