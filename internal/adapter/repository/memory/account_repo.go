package memory

import (
	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

// AccountRepository keeps accounts in a map keyed by account id.
type AccountRepository struct {
	accounts map[domain.AccountID]*domain.Account
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[domain.AccountID]*domain.Account),
	}
}

// GetOrCreate returns the account for id, creating an empty one on first use.
func (r *AccountRepository) GetOrCreate(id domain.AccountID) *domain.Account {
	if acc, ok := r.accounts[id]; ok {
		return acc
	}
	acc := domain.NewAccount(id)
	r.accounts[id] = acc
	return acc
}

// Get returns the account for id.
func (r *AccountRepository) Get(id domain.AccountID) (*domain.Account, bool) {
	acc, ok := r.accounts[id]
	return acc, ok
}

// List returns all accounts in no particular order.
func (r *AccountRepository) List() []*domain.Account {
	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		accounts = append(accounts, acc)
	}
	return accounts
}

var _ usecase.AccountRepository = (*AccountRepository)(nil)
