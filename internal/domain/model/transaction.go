package model

import (
	"errors"
	"log/slog"
)

// Default values applied to optional transaction fields.
const (
	DefaultMerchant = "default"
	DefaultGeo      = "IN"
	DefaultDevice   = "mobile"
)

// ErrAmountRequired is returned when a transaction carries no amount.
var ErrAmountRequired = errors.New("amount is required")

// TransactionInput describes a single transaction submitted for scoring.
// It lives for the duration of one request.
type TransactionInput struct {
	Merchant string
	Geo      string
	Device   string
	Amount   float64
}

// NewTransactionInput builds a TransactionInput, applying defaults to any
// empty optional field. A nil amount is rejected.
func NewTransactionInput(amount *float64, merchant, geo, device string) (TransactionInput, error) {
	if amount == nil {
		return TransactionInput{}, ErrAmountRequired
	}
	in := TransactionInput{
		Amount:   *amount,
		Merchant: merchant,
		Geo:      geo,
		Device:   device,
	}
	return in.WithDefaults(), nil
}

// WithDefaults returns a copy with empty optional fields filled in.
func (t TransactionInput) WithDefaults() TransactionInput {
	if t.Merchant == "" {
		t.Merchant = DefaultMerchant
	}
	if t.Geo == "" {
		t.Geo = DefaultGeo
	}
	if t.Device == "" {
		t.Device = DefaultDevice
	}
	return t
}

// LogValue implements slog.LogValuer.
func (t TransactionInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("amount", t.Amount),
		slog.String("merchant", t.Merchant),
		slog.String("geo", t.Geo),
		slog.String("device", t.Device),
	)
}
