package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bibbank/scoring-service/internal/domain/model"
)

// SaturationAmount is the amount at which the base score reaches 1.0.
const SaturationAmount = 10000.0

// scoreDecimals is the number of decimal places kept in a score.
const scoreDecimals = 2

// NoiseScorer computes a synthetic risk score: a linear ramp on the amount,
// perturbed by noise, clamped to [0, 1] and rounded to two decimals.
type NoiseScorer struct {
	noise NoiseSource
}

// NewNoiseScorer creates a NoiseScorer. A nil source yields the default
// uniform noise.
func NewNoiseScorer(noise NoiseSource) *NoiseScorer {
	if noise == nil {
		noise = NewUniformNoise(DefaultNoiseSpread)
	}
	return &NoiseScorer{noise: noise}
}

// Score evaluates the transaction. It holds no state besides the noise source.
func (s *NoiseScorer) Score(input model.TransactionInput) model.ScoreResult {
	raw := BaseScore(input.Amount) + s.noise.Draw()
	return model.ScoreResult{Score: RoundScore(Clamp(raw))}
}

// BaseScore is min(amount/SaturationAmount, 1). Negative amounts give a
// negative base which the final clamp absorbs.
func BaseScore(amount float64) float64 {
	return math.Min(amount/SaturationAmount, model.MaxScore)
}

// Clamp bounds v to [MinScore, MaxScore]. NaN maps to MinScore.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return model.MinScore
	}
	return math.Max(model.MinScore, math.Min(v, model.MaxScore))
}

// RoundScore rounds to two decimal places, half to even on the exact binary
// value of v.
func RoundScore(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, -30).RoundBank(scoreDecimals).InexactFloat64()
}
