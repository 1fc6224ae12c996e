package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecordedEvent is published by the backend for every transaction it
// stores for the first time.
type SaleRecordedEvent struct {
	LocalID     string          `json:"local_id"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	PaymentType string          `json:"payment_type"`
	Timestamp   time.Time       `json:"timestamp"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// NewSaleRecordedEvent builds the event for a stored transaction.
func NewSaleRecordedEvent(t Transaction, now time.Time) SaleRecordedEvent {
	ev := SaleRecordedEvent{
		LocalID:    t.LocalID,
		Amount:     t.Amount,
		Quantity:   t.Quantity,
		Timestamp:  t.Timestamp,
		RecordedAt: now,
	}
	if t.PaymentType != nil {
		ev.PaymentType = *t.PaymentType
	}
	return ev
}
