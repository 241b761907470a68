package domain

import "time"

// SchoolYear is an accounting period ledger entries are stamped with.
type SchoolYear struct {
	SchoolYearID string    `json:"schoolYearID"`
	Label        string    `json:"label"` // e.g. "2025-2026"
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsActive     bool      `json:"isActive"`
}
