package model

import "github.com/bibbank/scoring-service/internal/domain/valueobject"

// Score bounds.
const (
	MinScore = 0.0
	MaxScore = 1.0
)

// ScoreResult is a risk score in [0.0, 1.0] with at most two decimal places.
type ScoreResult struct {
	Score float64
}

// Band classifies the score for logging and metrics.
func (r ScoreResult) Band() valueobject.RiskBand {
	return valueobject.RiskBandFromScore(r.Score)
}
