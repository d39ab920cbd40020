package handler

import (
	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

// LedgerService defines the behavior needed by the handlers.
type LedgerService interface {
	Ingest(source usecase.TransactionSource) (*usecase.BatchSummary, error)
	Accounts() []domain.Account
	Account(id domain.AccountID) (domain.Account, bool)
}

var _ LedgerService = (*usecase.LedgerService)(nil)
