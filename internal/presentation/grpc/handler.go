package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/scoring-service/internal/application/dto"
	"github.com/bibbank/scoring-service/internal/application/usecase"
	"github.com/bibbank/scoring-service/internal/domain/model"
)

// Compile-time assertion that ScoringServiceHandler implements ScoringServiceServer.
var _ ScoringServiceServer = (*ScoringServiceHandler)(nil)

// ScoringServiceHandler implements the gRPC ScoringServiceServer interface.
type ScoringServiceHandler struct {
	UnimplementedScoringServiceServer
	scoreTransaction *usecase.ScoreTransaction
	logger           *slog.Logger
}

// NewScoringServiceHandler creates a new gRPC handler.
func NewScoringServiceHandler(scoreTransaction *usecase.ScoreTransaction, logger *slog.Logger) *ScoringServiceHandler {
	return &ScoringServiceHandler{
		scoreTransaction: scoreTransaction,
		logger:           logger,
	}
}

// Score handles a scoring request.
func (h *ScoringServiceHandler) Score(ctx context.Context, req *ScoreRequest) (*ScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.scoreTransaction.Execute(ctx, dto.ScoreRequest{
		Amount:   req.Amount,
		Merchant: req.Merchant,
		Geo:      req.Geo,
		Device:   req.Device,
	})
	if err != nil {
		if errors.Is(err, model.ErrAmountRequired) {
			return nil, status.Error(codes.InvalidArgument, model.ErrAmountRequired.Error())
		}
		h.logger.Error("failed to score transaction", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &ScoreResponse{Score: result.Score}, nil
}
