package world

import (
	"fmt"
	"sync"
)

// BankAccount holds a player's deposited coin. Deposits and withdrawals
// may race from different sessions, so the balance is mutex-guarded.
type BankAccount struct {
	mu      sync.Mutex
	owner   Ref
	balance Coins
}

// NewBankAccount opens an account for the given player with an opening
// balance.
func NewBankAccount(owner Ref, opening Coins) (*BankAccount, error) {
	if owner <= Nowhere {
		return nil, &ValidationError{Err: fmt.Errorf("account owner is required")}
	}
	if opening < 0 {
		return nil, &ValidationError{Err: fmt.Errorf("opening balance cannot be negative")}
	}
	return &BankAccount{owner: owner, balance: opening}, nil
}

func (a *BankAccount) Owner() Ref {
	return a.owner
}

func (a *BankAccount) Balance() Coins {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds coin to the account.
func (a *BankAccount) Deposit(amount Coins) error {
	if amount <= 0 {
		return fmt.Errorf("deposit must be positive, got %s", amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	return nil
}

// Withdraw removes coin from the account. Overdrafts are rejected without
// changing the balance.
func (a *BankAccount) Withdraw(amount Coins) error {
	if amount <= 0 {
		return fmt.Errorf("withdrawal must be positive, got %s", amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount > a.balance {
		return fmt.Errorf("insufficient funds: have %s, want %s", a.balance, amount)
	}
	a.balance -= amount
	return nil
}
