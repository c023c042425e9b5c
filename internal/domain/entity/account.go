package entity

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// AccountRef locates an account without holding a pointer to it: the bank id
// resolves through a BankRegistry, the account id through the owning bank.
type AccountRef struct {
	BankID    string
	AccountID string
}

func (r AccountRef) IsZero() bool {
	return r.BankID == "" || r.AccountID == ""
}

// Account serializes its own debit/credit operations so the sufficiency
// check and the balance mutation are a single atomic step.
type Account struct {
	id string

	mu      sync.Mutex
	balance decimal.Decimal
}

func NewAccount(id string, opening decimal.Decimal) *Account {
	return &Account{
		id:      id,
		balance: opening,
	}
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return nil
}
