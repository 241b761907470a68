package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Actor is a snapshot of the acting user taken at write time.
// DisplayName is stored as-is and never re-resolved, so historical records
// keep the name the user had when the movement was recorded.
type Actor struct {
	UserID      string `json:"userID"`
	DisplayName string `json:"displayName"`
}
