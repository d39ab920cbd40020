package memory

import (
	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

// RecordRepository keeps chargeable records in a map keyed by tx id.
type RecordRepository struct {
	records map[domain.TxID]*domain.ChargeableRecord
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		records: make(map[domain.TxID]*domain.ChargeableRecord),
	}
}

// Get returns the record stored under txID.
func (r *RecordRepository) Get(txID domain.TxID) (*domain.ChargeableRecord, bool) {
	rec, ok := r.records[txID]
	return rec, ok
}

// Save stores record, overwriting a previous record with the same tx id.
func (r *RecordRepository) Save(record *domain.ChargeableRecord) {
	r.records[record.TxID] = record
}

var _ usecase.RecordRepository = (*RecordRepository)(nil)
