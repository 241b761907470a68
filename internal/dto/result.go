package dto

import "github.com/shopspring/decimal"

// Result is the envelope every endpoint answers with.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResult is the envelope of a failed operation.
type ErrorResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	// Set when a withdrawal is rejected.
	Source    string           `json:"source,omitempty"`
	Available *decimal.Decimal `json:"available,omitempty"`
	Requested *decimal.Decimal `json:"requested,omitempty"`
}

// OK wraps data in a successful Result.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}
