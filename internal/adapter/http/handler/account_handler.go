package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/adapter/csv"
	"github.com/iho/txengine/internal/adapter/http/dto"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	service LedgerService
	logger  zerolog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service LedgerService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger,
	}
}

// Get retrieves an account by client id.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	account, ok := h.service.Account(id)
	if !ok {
		writeError(w, http.StatusNotFound, "account not found", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists all accounts ordered by client id. With ?format=csv the body
// uses the same layout as the batch output.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.service.Accounts()

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		if err := csv.NewWriter(w).WriteAccounts(accounts); err != nil {
			h.logger.Error().Err(err).Int("accounts", len(accounts)).Msg("failed to write accounts csv")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}
