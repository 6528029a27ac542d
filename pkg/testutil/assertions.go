package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireScoreInBand fails the test immediately if score is outside [lo, hi].
func RequireScoreInBand(t *testing.T, score, lo, hi float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.GreaterOrEqual(t, score, lo, msgAndArgs...)
	require.LessOrEqual(t, score, hi, msgAndArgs...)
}

// AssertTwoDecimals checks that score carries at most two decimal places.
func AssertTwoDecimals(t *testing.T, score float64) bool {
	t.Helper()
	scaled := score * 100
	return assert.InDelta(t, math.Round(scaled), scaled, 1e-6, "score %v has more than two decimal places", score)
}
