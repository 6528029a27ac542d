package port

import (
	"context"

	"github.com/bibbank/scoring-service/internal/domain/model"
)

// ScoreRecorder defines the port for recording scoring outcomes to the
// metrics backend.
type ScoreRecorder interface {
	// RecordScore notes one completed scoring call.
	RecordScore(ctx context.Context, input model.TransactionInput, result model.ScoreResult)
}
