package service

import "github.com/bibbank/scoring-service/internal/domain/model"

// Scorer defines the interface for risk scoring strategies.
type Scorer interface {
	Score(input model.TransactionInput) model.ScoreResult
}
