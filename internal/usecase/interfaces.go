package usecase

import (
	"time"

	"github.com/iho/txengine/internal/domain"
)

// AccountRepository holds the engine's accounts.
type AccountRepository interface {
	// GetOrCreate returns the account for id, inserting a zero account first if it
	// has never been seen.
	GetOrCreate(id domain.AccountID) *domain.Account
	Get(id domain.AccountID) (*domain.Account, bool)
	List() []*domain.Account
}

// RecordRepository holds chargeable records for dispute correlation.
type RecordRepository interface {
	Get(txID domain.TxID) (*domain.ChargeableRecord, bool)
	// Save inserts the record, replacing any record stored under the same tx id.
	Save(record *domain.ChargeableRecord)
}

// TransactionSource yields parsed transactions in input order.
// Next returns io.EOF when the input is exhausted, and an error wrapping
// domain.ErrMalformedRecord for a row that should be skipped.
type TransactionSource interface {
	Next() (*domain.Transaction, error)
}

// MetricsRecorder receives processing events.
type MetricsRecorder interface {
	ObserveTransaction(txType domain.TransactionType, err error)
	ObserveMalformedRow()
	ObserveBatch(duration time.Duration)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
