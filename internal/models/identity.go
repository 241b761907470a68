package models

import "time"

// User is a row of users. Only the columns the ledger needs are mapped.
type User struct {
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
	Role        string `db:"role"`
}

// SchoolYear is a row of school_years.
type SchoolYear struct {
	SchoolYearID string    `db:"school_year_id"`
	Label        string    `db:"label"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	IsActive     bool      `db:"is_active"`
}
