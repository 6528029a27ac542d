package valueobject

// Band thresholds, shared with the decision backend that consumes scores:
// scores below ApproveThreshold are auto-approved, scores at or above
// BlockThreshold are auto-blocked.
const (
	ApproveThreshold = 0.3
	BlockThreshold   = 0.8
)

// RiskBand is an immutable value object classifying a risk score.
type RiskBand struct {
	value string
}

var (
	RiskBandLow    = RiskBand{value: "LOW"}
	RiskBandReview = RiskBand{value: "REVIEW"}
	RiskBandHigh   = RiskBand{value: "HIGH"}
)

// RiskBandFromScore derives the band for a score in [0.0, 1.0].
func RiskBandFromScore(score float64) RiskBand {
	switch {
	case score >= BlockThreshold:
		return RiskBandHigh
	case score >= ApproveThreshold:
		return RiskBandReview
	default:
		return RiskBandLow
	}
}

// String returns the string representation.
func (b RiskBand) String() string {
	return b.value
}

// IsZero returns true if the RiskBand has not been set.
func (b RiskBand) IsZero() bool {
	return b.value == ""
}
