package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/scoring-service/internal/domain/model"
	"github.com/bibbank/scoring-service/internal/domain/port"
)

// MeterName is the instrumentation scope for scoring metrics.
const MeterName = "github.com/bibbank/scoring-service"

var _ port.ScoreRecorder = (*MetricsRecorder)(nil)

// MetricsRecorder implements port.ScoreRecorder with OpenTelemetry instruments.
type MetricsRecorder struct {
	requests metric.Int64Counter
	scores   metric.Float64Histogram
}

// NewMetricsRecorder registers the scoring instruments on the given provider.
func NewMetricsRecorder(provider metric.MeterProvider) (*MetricsRecorder, error) {
	meter := provider.Meter(MeterName)

	requests, err := meter.Int64Counter("scoring_requests_total",
		metric.WithDescription("Number of transactions scored, by risk band."))
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	scores, err := meter.Float64Histogram("scoring_score",
		metric.WithDescription("Distribution of returned risk scores."),
		metric.WithExplicitBucketBoundaries(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0))
	if err != nil {
		return nil, fmt.Errorf("failed to create score histogram: %w", err)
	}

	return &MetricsRecorder{requests: requests, scores: scores}, nil
}

// RecordScore increments the request counter and observes the score.
func (r *MetricsRecorder) RecordScore(ctx context.Context, input model.TransactionInput, result model.ScoreResult) {
	attrs := metric.WithAttributes(
		attribute.String("band", result.Band().String()),
		attribute.String("device", input.Device),
	)
	r.requests.Add(ctx, 1, attrs)
	r.scores.Record(ctx, result.Score, attrs)
}
