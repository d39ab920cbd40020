package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountID identifies a client account.
type AccountID uint16

// Account holds the balance state of a single client.
// Total always equals Available + Held; once Locked is set it never changes again.
type Account struct {
	ID        AccountID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(id AccountID) *Account {
	return &Account{
		ID:        id,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Deposit credits amount to the available and total balances.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.checkLock(); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if amount.IsNegative() {
		return fmt.Errorf("deposit: %w", ErrNegativeAmount)
	}

	available, err := CheckedAdd(a.Available, amount)
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	total, err := CheckedAdd(a.Total, amount)
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	a.Available = available
	a.Total = total
	return nil
}

// Withdraw debits amount from the available and total balances.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.checkLock(); err != nil {
		return fmt.Errorf("withdrawal: %w", err)
	}
	if amount.IsNegative() {
		return fmt.Errorf("withdrawal: %w", ErrNegativeAmount)
	}
	if a.Available.LessThan(amount) || a.Total.LessThan(amount) {
		return fmt.Errorf("withdrawal: %w", ErrInsufficientFunds)
	}

	// Sufficiency is checked above, so these only fail on a corrupted account.
	available, err := CheckedSub(a.Available, amount)
	if err != nil {
		return fmt.Errorf("withdrawal: %w", err)
	}
	total, err := CheckedSub(a.Total, amount)
	if err != nil {
		return fmt.Errorf("withdrawal: %w", err)
	}

	a.Available = available
	a.Total = total
	return nil
}

// Dispute moves amount from available to held funds.
func (a *Account) Dispute(amount decimal.Decimal) error {
	if err := a.checkLock(); err != nil {
		return fmt.Errorf("dispute: %w", err)
	}
	if a.Available.LessThan(amount) {
		return fmt.Errorf("dispute: %w", ErrInsufficientFunds)
	}

	available, err := CheckedSub(a.Available, amount)
	if err != nil {
		return fmt.Errorf("dispute: %w", err)
	}
	held, err := CheckedAdd(a.Held, amount)
	if err != nil {
		return fmt.Errorf("dispute: %w", err)
	}

	a.Available = available
	a.Held = held
	return nil
}

// Resolve releases amount from held back to available funds.
func (a *Account) Resolve(amount decimal.Decimal) error {
	if err := a.checkLock(); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	if a.Held.LessThan(amount) {
		return fmt.Errorf("resolve: %w", ErrInsufficientFunds)
	}

	held, err := CheckedSub(a.Held, amount)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	available, err := CheckedAdd(a.Available, amount)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	a.Held = held
	a.Available = available
	return nil
}

// Chargeback removes amount from held and total funds and locks the account.
func (a *Account) Chargeback(amount decimal.Decimal) error {
	if err := a.checkLock(); err != nil {
		return fmt.Errorf("chargeback: %w", err)
	}
	if a.Held.LessThan(amount) || a.Total.LessThan(amount) {
		return fmt.Errorf("chargeback: %w", ErrInsufficientFunds)
	}

	held, err := CheckedSub(a.Held, amount)
	if err != nil {
		return fmt.Errorf("chargeback: %w", err)
	}
	total, err := CheckedSub(a.Total, amount)
	if err != nil {
		return fmt.Errorf("chargeback: %w", err)
	}

	a.Held = held
	a.Total = total
	a.Locked = true
	return nil
}

// ValidateOwner checks that a referencing transaction addressed to accountID
// targets this account.
func (a *Account) ValidateOwner(accountID AccountID) error {
	if a.ID != accountID {
		return ErrOwnerMismatch
	}
	return nil
}

func (a *Account) checkLock() error {
	if a.Locked {
		return ErrAccountLocked
	}
	return nil
}
