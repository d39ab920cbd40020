package usecase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/txengine/internal/domain"
)

// Engine applies transactions to accounts in the order they are given.
// It is not safe for concurrent use; see LedgerService.
type Engine struct {
	accounts AccountRepository
	records  RecordRepository
}

// NewEngine creates a new Engine.
func NewEngine(accounts AccountRepository, records RecordRepository) *Engine {
	return &Engine{
		accounts: accounts,
		records:  records,
	}
}

// ProcessTransaction applies tx to its account.
//
// Deposits and withdrawals are recorded for later disputes only when they succeed.
// Disputes, resolves and chargebacks that reference an unknown transaction are
// ignored and return nil.
func (e *Engine) ProcessTransaction(tx *domain.Transaction) error {
	account := e.accounts.GetOrCreate(tx.AccountID)

	switch tx.Type {
	case domain.TransactionTypeDeposit:
		return e.applyChargeable(tx, account.Deposit)
	case domain.TransactionTypeWithdrawal:
		return e.applyChargeable(tx, account.Withdraw)
	case domain.TransactionTypeDispute:
		return e.applyReferencing(tx, account, account.Dispute)
	case domain.TransactionTypeResolve:
		return e.applyReferencing(tx, account, account.Resolve)
	case domain.TransactionTypeChargeback:
		return e.applyReferencing(tx, account, account.Chargeback)
	default:
		return fmt.Errorf("%w: unknown transaction type %q", domain.ErrMalformedRecord, tx.Type)
	}
}

func (e *Engine) applyChargeable(tx *domain.Transaction, apply func(decimal.Decimal) error) error {
	record, err := domain.NewChargeableRecord(tx)
	if err != nil {
		return err
	}

	if err := apply(record.Amount); err != nil {
		return err
	}

	e.records.Save(record)
	return nil
}

func (e *Engine) applyReferencing(tx *domain.Transaction, account *domain.Account, apply func(decimal.Decimal) error) error {
	record, ok := e.records.Get(tx.TxID)
	if !ok {
		return nil
	}

	if err := account.ValidateOwner(record.AccountID); err != nil {
		return err
	}

	return apply(record.Amount)
}

// Accounts returns a snapshot of every account, ordered by id.
func (e *Engine) Accounts() []domain.Account {
	accounts := e.accounts.List()

	result := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, *a)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Account returns a snapshot of a single account.
func (e *Engine) Account(id domain.AccountID) (domain.Account, bool) {
	a, ok := e.accounts.Get(id)
	if !ok {
		return domain.Account{}, false
	}
	return *a, true
}
