package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TxID identifies a transaction in the input feed.
type TxID uint32

// TransactionType is the kind of an inbound transaction.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeDispute    TransactionType = "dispute"
	TransactionTypeResolve    TransactionType = "resolve"
	TransactionTypeChargeback TransactionType = "chargeback"
)

// ParseTransactionType parses a type name, ignoring case and surrounding space.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal,
		TransactionTypeDispute, TransactionTypeResolve, TransactionTypeChargeback:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", ErrMalformedRecord, s)
}

// IsChargeable reports whether transactions of this type create a record that
// disputes can later reference.
func (t TransactionType) IsChargeable() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdrawal
}

// Transaction is a single parsed input row.
// Amount is nil for dispute, resolve and chargeback.
type Transaction struct {
	Type      TransactionType
	AccountID AccountID
	TxID      TxID
	Amount    *decimal.Decimal
}

// ChargeableRecord is the stored form of a successful deposit or withdrawal.
type ChargeableRecord struct {
	TxID      TxID
	AccountID AccountID
	Type      TransactionType
	Amount    decimal.Decimal
}

// NewChargeableRecord builds the record for tx. It fails with ErrMissingAmount when
// tx carries no amount.
func NewChargeableRecord(tx *Transaction) (*ChargeableRecord, error) {
	if tx.Amount == nil {
		return nil, ErrMissingAmount
	}
	return &ChargeableRecord{
		TxID:      tx.TxID,
		AccountID: tx.AccountID,
		Type:      tx.Type,
		Amount:    *tx.Amount,
	}, nil
}
