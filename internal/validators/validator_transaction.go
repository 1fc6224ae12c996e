package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/pos-lite/models"
)

const (
	FieldLocalID      = "local_id"
	FieldProductName  = "product_name"
	FieldAmount       = "amount"
	FieldQuantity     = "quantity"
	FieldPaymentType  = "payment_type"
	FieldTimestamp    = "timestamp"
	FieldTransactions = "transactions"
)

type TransactionValidator struct {
}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)

	case models.NewSale:
		return v.validateNewSale(ctx, value, fields...)
	case *models.NewSale:
		return v.validateNewSale(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateBatch(ctx, value.Transactions, fields...)
	case *models.SyncRequest:
		return v.validateBatch(ctx, value.Transactions, fields...)

	case []models.Transaction:
		return v.validateBatch(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTransaction checks a stored or transmitted record. ProductName and
// PaymentType may be nil: a terminal that failed to decrypt a field still
// has to be able to sync the rest of the record.
func (v *TransactionValidator) validateTransaction(_ context.Context, tx models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocalID, FieldAmount, FieldQuantity, FieldPaymentType, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldLocalID:
			if strings.TrimSpace(tx.LocalID) == "" {
				return ErrInvalidLocalID
			}
		case FieldProductName:
			if tx.ProductName == nil || strings.TrimSpace(*tx.ProductName) == "" {
				return ErrEmptyProductName
			}
		case FieldAmount:
			if tx.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		case FieldQuantity:
			if tx.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		case FieldPaymentType:
			if tx.PaymentType != nil && !models.PaymentType(*tx.PaymentType).IsKnown() {
				return fmt.Errorf("%w: %q", ErrUnknownPaymentType, *tx.PaymentType)
			}
		case FieldTimestamp:
			if tx.Timestamp.IsZero() {
				return ErrMissingTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TransactionValidator) validateNewSale(_ context.Context, sale models.NewSale, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProductName, FieldAmount, FieldQuantity, FieldPaymentType}
	}

	for _, f := range fields {
		switch f {
		case FieldProductName:
			if strings.TrimSpace(sale.ProductName) == "" {
				return ErrEmptyProductName
			}
		case FieldAmount:
			if sale.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		case FieldQuantity:
			if sale.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		case FieldPaymentType:
			if sale.PaymentType == "" {
				return ErrMissingPaymentType
			}
			if !models.PaymentType(sale.PaymentType).IsKnown() {
				return fmt.Errorf("%w: %q", ErrUnknownPaymentType, sale.PaymentType)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TransactionValidator) validateBatch(ctx context.Context, txs []models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTransactions}
	}

	for _, f := range fields {
		switch f {
		case FieldTransactions:
			if len(txs) == 0 {
				return ErrEmptyTransactions
			}
			for i, tx := range txs {
				if err := v.validateTransaction(ctx, tx); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
