package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bibbank/scoring-service/internal/application/dto"
	"github.com/bibbank/scoring-service/internal/application/usecase"
	"github.com/bibbank/scoring-service/internal/domain/model"
)

// ScoreHandler serves POST /score.
type ScoreHandler struct {
	scoreTransaction *usecase.ScoreTransaction
	logger           *slog.Logger
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(scoreTransaction *usecase.ScoreTransaction, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{
		scoreTransaction: scoreTransaction,
		logger:           logger,
	}
}

// RegisterRoutes registers the scoring endpoint.
func (h *ScoreHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/score", h.Score)
}

// Score handles POST /score.
//
//	200 OK: {"score": number}
//	422 Unprocessable Entity: missing or malformed amount, malformed body
func (h *ScoreHandler) Score(c *gin.Context) {
	logger := h.logger.With("request_id", RequestID(c))

	var req dto.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid score request", "error", err)
		c.JSON(http.StatusUnprocessableEntity, bindingError(err))
		return
	}

	resp, err := h.scoreTransaction.Execute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrAmountRequired) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: err.Error(),
				Code:  CodeInvalidRequest,
			})
			return
		}
		logger.Error("failed to score transaction", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: CodeInternal})
		return
	}

	c.JSON(http.StatusOK, resp)
}
