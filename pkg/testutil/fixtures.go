package testutil

// Amounts that land on the edges and middle of the base-score ramp.
const (
	ZeroAmount      = 0.0
	MidAmount       = 5000.0
	SaturatedAmount = 10000.0
)

// Amount returns a pointer to f, for request DTOs where amount is optional on the wire.
func Amount(f float64) *float64 {
	return &f
}
