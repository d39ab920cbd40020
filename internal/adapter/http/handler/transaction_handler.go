package handler

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/adapter/csv"
	"github.com/iho/txengine/internal/adapter/http/dto"
)

// TransactionHandler ingests CSV transaction uploads.
type TransactionHandler struct {
	service  LedgerService
	maxBytes int64
	logger   zerolog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
// A maxBytes of zero or less disables the body limit.
func NewTransactionHandler(service LedgerService, maxBytes int64, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Ingest applies every row of the uploaded CSV and returns the batch summary.
// Rows that fail are skipped and counted; only unreadable input fails the request.
// Uploads declaring a body over the limit are refused before any row is applied.
// A read failure mid-upload leaves the rows before it applied, and the error body
// carries the partial summary describing them.
func (h *TransactionHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 && r.ContentLength > h.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "invalid transactions",
			fmt.Sprintf("upload of %d bytes exceeds limit of %d bytes", r.ContentLength, h.maxBytes))
		return
	}

	body := r.Body
	if h.maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}
	defer body.Close()

	summary, err := h.service.Ingest(csv.NewReader(body))
	if summary != nil {
		w.Header().Set(dto.RunIDHeader, summary.RunID)
	}
	if err != nil {
		event := h.logger.Warn().Err(err)
		if summary != nil {
			event = event.Str("run_id", summary.RunID).Int("applied", summary.Applied)
		}
		event.Msg("rejected transaction upload")

		resp := dto.ErrorResponse{Error: "invalid transactions", Message: err.Error()}
		if summary != nil {
			resp.Batch = dto.BatchFromSummary(summary)
		}
		writeJSON(w, mapIngestError(err), resp)
		return
	}

	writeJSON(w, http.StatusOK, dto.BatchFromSummary(summary))
}
