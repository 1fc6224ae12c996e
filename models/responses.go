package models

import "time"

// SyncRequest is the body of the bulk sync call.
type SyncRequest struct {
	Transactions []Transaction `json:"transactions"`
}

// SyncResponse acknowledges a bulk sync.
//
// SyncedIDs is a pointer so that a reply without the field can be told apart
// from an explicit empty list.
type SyncResponse struct {
	Message   string    `json:"message,omitempty"`
	SyncedIDs *[]string `json:"synced_ids,omitempty"`
}

// AddResponse is returned by the single-record create endpoint.
type AddResponse struct {
	Message      string        `json:"message"`
	Transactions []Transaction `json:"transactions"`
}

// TransactionsResponse lists backend transactions.
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Count        int           `json:"count"`
}

// StatusResponse is the liveness payload of the backend root endpoint.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the JSON error body used by both HTTP surfaces.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AddResult is the outcome of sending one record to the backend.
// Success is true only for an explicit positive acknowledgment.
type AddResult struct {
	Success bool
	Data    *Transaction
	Error   string
}

// TransactionsFilter narrows a backend listing. Days takes precedence over
// the Start/End window; an empty filter lists everything.
type TransactionsFilter struct {
	Days  int
	Start *time.Time
	End   *time.Time
}
