package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLocalID     = errors.New("local_id is required")
	ErrEmptyProductName   = errors.New("product_name is required")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrMissingPaymentType = errors.New("payment_type is required")
	ErrUnknownPaymentType = errors.New("unknown payment_type")
	ErrMissingTimestamp   = errors.New("timestamp is required")
	ErrEmptyTransactions  = errors.New("no transactions to sync")
)
