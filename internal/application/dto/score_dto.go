package dto

import "github.com/bibbank/scoring-service/internal/domain/model"

// ScoreRequest is the input DTO for the ScoreTransaction use case and the
// JSON body of POST /score. Amount is a pointer so that an explicit 0 is
// distinguishable from an absent field.
type ScoreRequest struct {
	Amount   *float64 `json:"amount" binding:"required"`
	Merchant string   `json:"merchant"`
	Geo      string   `json:"geo"`
	Device   string   `json:"device"`
}

// ScoreResponse is the output DTO returned after scoring.
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// FromModel maps a domain result to the response DTO.
func FromModel(r model.ScoreResult) ScoreResponse {
	return ScoreResponse{Score: r.Score}
}
