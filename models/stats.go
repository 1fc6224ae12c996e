package models

import "github.com/shopspring/decimal"

// PeriodStats is the revenue summary of one reporting window.
type PeriodStats struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`

	// Transactions is filled by the backend for the daily window only.
	Transactions []Transaction `json:"transactions,omitempty"`
}

// Stats is the dashboard summary. It is derived on every request and never
// persisted. The same shape is produced locally and by the backend.
type Stats struct {
	Daily  PeriodStats `json:"daily"`
	Weekly PeriodStats `json:"weekly"`

	// Pending is the number of records not yet acknowledged by the backend.
	Pending int `json:"pending"`
}
