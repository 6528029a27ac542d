package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bibbank/scoring-service/internal/application/dto"
	"github.com/bibbank/scoring-service/internal/domain/model"
	"github.com/bibbank/scoring-service/internal/domain/port"
	"github.com/bibbank/scoring-service/internal/domain/service"
)

const tracerName = "github.com/bibbank/scoring-service/internal/application/usecase"

// ScoreTransaction is the use case for producing a risk score for one transaction.
type ScoreTransaction struct {
	scorer   service.Scorer
	recorder port.ScoreRecorder
	logger   *slog.Logger
}

// NewScoreTransaction creates a new ScoreTransaction use case. recorder may be nil.
func NewScoreTransaction(scorer service.Scorer, recorder port.ScoreRecorder, logger *slog.Logger) *ScoreTransaction {
	return &ScoreTransaction{
		scorer:   scorer,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute validates the request, scores it and logs the outcome.
func (uc *ScoreTransaction) Execute(ctx context.Context, req dto.ScoreRequest) (dto.ScoreResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ScoreTransaction")
	defer span.End()

	input, err := model.NewTransactionInput(req.Amount, req.Merchant, req.Geo, req.Device)
	if err != nil {
		span.RecordError(err)
		return dto.ScoreResponse{}, fmt.Errorf("invalid transaction: %w", err)
	}

	result := uc.scorer.Score(input)

	span.SetAttributes(
		attribute.Float64("scoring.score", result.Score),
		attribute.String("scoring.band", result.Band().String()),
	)

	uc.logger.InfoContext(ctx, "scored transaction",
		slog.Any("transaction", input),
		slog.Float64("score", result.Score),
		slog.String("band", result.Band().String()),
	)

	if uc.recorder != nil {
		uc.recorder.RecordScore(ctx, input, result)
	}

	return dto.FromModel(result), nil
}
