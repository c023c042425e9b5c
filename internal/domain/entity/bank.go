package entity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

// Bank is the sole authority over its accounts' balances. Everything else
// goes through ProcessDebit/ProcessCredit, never the accounts directly.
type Bank struct {
	id string

	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewBank(id string) *Bank {
	return &Bank{
		id:       id,
		accounts: make(map[string]*Account),
	}
}

func (b *Bank) ID() string {
	return b.id
}

func (b *Bank) OpenAccount(accountID string, opening decimal.Decimal) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[accountID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountExists, accountID)
	}

	acc := NewAccount(accountID, opening)
	b.accounts[accountID] = acc
	return acc, nil
}

func (b *Bank) Account(accountID string) (*Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return acc, nil
}

// ProcessDebit is the bank's processing step around the account primitive.
// Policy such as per-transaction limits or fees would interpose here.
func (b *Bank) ProcessDebit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	acc, err := b.Account(accountID)
	if err != nil {
		return err
	}
	return acc.Debit(amount)
}

func (b *Bank) ProcessCredit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	acc, err := b.Account(accountID)
	if err != nil {
		return err
	}
	return acc.Credit(amount)
}

func (b *Bank) Balance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	acc, err := b.Account(accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return acc.Balance(), nil
}
