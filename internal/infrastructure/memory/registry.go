package memory

import (
	"fmt"
	"sync"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/repository"
)

// BankRegistry resolves bank ids to their processing services. Banks are
// registered at bootstrap and live for the process lifetime.
type BankRegistry struct {
	mu    sync.RWMutex
	banks map[string]repository.BankService
}

func NewBankRegistry() *BankRegistry {
	return &BankRegistry{banks: make(map[string]repository.BankService)}
}

func (r *BankRegistry) Register(bank repository.BankService) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banks[bank.ID()] = bank
}

func (r *BankRegistry) Bank(id string) (repository.BankService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.banks[id]
	if !ok {
		return nil, fmt.Errorf("bank %s: %w", id, repository.ErrNotFound)
	}
	return bank, nil
}

// AccountDirectory maps user ids to account refs.
type AccountDirectory struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewAccountDirectory() *AccountDirectory {
	return &AccountDirectory{users: make(map[string]*entity.User)}
}

func (d *AccountDirectory) Register(user *entity.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID()] = user
}

func (d *AccountDirectory) ResolveAccount(userID string) (entity.AccountRef, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return entity.AccountRef{}, fmt.Errorf("user %s: %w", userID, repository.ErrNotFound)
	}
	return user.Account(), nil
}
