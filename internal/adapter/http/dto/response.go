package dto

import (
	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

// AccountResponse represents an account in API responses.
// Amounts are rendered with four fractional digits, as in the CSV output.
type AccountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a domain.Account) *AccountResponse {
	return &AccountResponse{
		Client:    uint16(a.ID),
		Available: domain.FormatAmount(a.Available),
		Held:      domain.FormatAmount(a.Held),
		Total:     domain.FormatAmount(a.Total),
		Locked:    a.Locked,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// BatchResponse summarises an ingested upload.
type BatchResponse struct {
	RunID      string `json:"run_id"`
	Rows       int    `json:"rows"`
	Applied    int    `json:"applied"`
	Failed     int    `json:"failed"`
	Malformed  int    `json:"malformed"`
	DurationMs int64  `json:"duration_ms"`
}

// BatchFromSummary converts a batch summary to response.
func BatchFromSummary(s *usecase.BatchSummary) *BatchResponse {
	return &BatchResponse{
		RunID:      s.RunID,
		Rows:       s.Rows,
		Applied:    s.Applied,
		Failed:     s.Failed,
		Malformed:  s.Malformed,
		DurationMs: s.Duration.Milliseconds(),
	}
}

// RunIDHeader carries the batch run id of an upload response.
const RunIDHeader = "X-Run-Id"

// ErrorResponse represents an error response. Batch is set when an upload failed
// after some rows were already applied.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message,omitempty"`
	Batch   *BatchResponse `json:"batch,omitempty"`
}
