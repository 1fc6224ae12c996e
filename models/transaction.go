package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as JSON numbers on the wire, same as the backend emits them
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentType enumerates the tender kinds a terminal accepts.
type PaymentType string

const (
	PaymentCash    PaymentType = "cash"
	PaymentCard    PaymentType = "card"
	PaymentMobile  PaymentType = "mobile"
	PaymentWavePay PaymentType = "wavepay"
)

// IsKnown reports whether p is one of the accepted payment types.
func (p PaymentType) IsKnown() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentWavePay:
		return true
	}
	return false
}

// Transaction is a single completed sale.
//
// On the terminal a Transaction is the plaintext view of a stored record:
// ProductName and PaymentType are nil when the stored ciphertext could not
// be decrypted. On the backend the same type is used as the persisted row,
// with ID set to the server-side serial key.
type Transaction struct {
	// ID is the backend row identifier. Zero on the terminal.
	ID int64 `json:"id,omitempty"`

	// LocalID is the client-generated identifier, assigned at creation and
	// never changed. It is the idempotency key for synchronization.
	LocalID string `json:"local_id"`

	ProductName *string         `json:"product_name"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	PaymentType *string         `json:"payment_type"`

	// Timestamp has millisecond precision once stored on the terminal.
	Timestamp time.Time `json:"timestamp"`

	// Synced is false until the backend has acknowledged the record.
	Synced bool `json:"synced"`
}

// LineTotal returns amount × quantity.
func (t Transaction) LineTotal() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// EncryptedTransaction is the at-rest form of a [Transaction] on the
// terminal. ProductName and PaymentType hold Field Cipher tokens.
type EncryptedTransaction struct {
	LocalID     string
	ProductName string
	Amount      decimal.Decimal
	Quantity    int
	PaymentType string
	Timestamp   time.Time
	Synced      bool
}

// NewSale is the input of the add-sale flow: everything the cashier enters.
// Identifier and timestamp are assigned by the terminal.
type NewSale struct {
	ProductName string          `json:"product_name"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	PaymentType string          `json:"payment_type"`
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
