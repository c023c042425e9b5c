package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/repository"
)

// IntentStore keeps payment intents in process memory. It stores
// reconstructed copies so callers cannot mutate a stored record through a
// shared pointer.
type IntentStore struct {
	mu      sync.RWMutex
	intents map[uuid.UUID]*entity.PaymentIntent
}

func NewIntentStore() *IntentStore {
	return &IntentStore{intents: make(map[uuid.UUID]*entity.PaymentIntent)}
}

func (s *IntentStore) Create(ctx context.Context, intent *entity.PaymentIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.intents[intent.ID()] = snapshot(intent)
	return nil
}

func (s *IntentStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	intent, ok := s.intents[id]
	if !ok {
		return nil, fmt.Errorf("intent %s: %w", id, repository.ErrNotFound)
	}
	return snapshot(intent), nil
}

func (s *IntentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.IntentStatus, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.intents[id]
	if !ok {
		return fmt.Errorf("intent %s: %w", id, repository.ErrNotFound)
	}

	s.intents[id] = entity.ReconstructPaymentIntent(
		intent.ID(), intent.PayerID(), intent.PayeeID(),
		intent.Amount(), status, reason, intent.CreatedAt(),
	)
	return nil
}

func snapshot(intent *entity.PaymentIntent) *entity.PaymentIntent {
	return entity.ReconstructPaymentIntent(
		intent.ID(), intent.PayerID(), intent.PayeeID(),
		intent.Amount(), intent.Status(), intent.Reason(), intent.CreatedAt(),
	)
}
