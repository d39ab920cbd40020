package usecase

import (
	"sync"

	"github.com/iho/txengine/internal/domain"
)

// LedgerService shares one Engine between concurrent callers by running every
// call under a single mutex, so the engine still sees one transaction at a time.
type LedgerService struct {
	mu     sync.Mutex
	engine *Engine
	batch  *BatchUseCase
}

// NewLedgerService creates a new LedgerService. batch must wrap engine.
func NewLedgerService(engine *Engine, batch *BatchUseCase) *LedgerService {
	return &LedgerService{
		engine: engine,
		batch:  batch,
	}
}

// Ingest processes all transactions from source. Batches never interleave.
func (s *LedgerService) Ingest(source TransactionSource) (*BatchSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batch.Process(source)
}

// Accounts returns a snapshot of every account, ordered by id.
func (s *LedgerService) Accounts() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Accounts()
}

// Account returns a snapshot of a single account.
func (s *LedgerService) Account(id domain.AccountID) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Account(id)
}
