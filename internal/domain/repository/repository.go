package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

//go:generate mockgen -destination ../../usecase/payment/mocks/repository.go -package mocks github.com/finlane/paycore/internal/domain/repository BankService,BankRegistry,AccountDirectory,IntentRepository

// BankService is the processing surface a bank exposes to the gateway.
type BankService interface {
	ID() string
	ProcessDebit(ctx context.Context, accountID string, amount decimal.Decimal) error
	ProcessCredit(ctx context.Context, accountID string, amount decimal.Decimal) error
	Balance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

type BankRegistry interface {
	Bank(id string) (BankService, error)
}

// AccountDirectory maps user ids to account refs. The directory itself is
// an external collaborator; only resolution is consumed here.
type AccountDirectory interface {
	ResolveAccount(userID string) (entity.AccountRef, error)
}

type IntentRepository interface {
	Create(ctx context.Context, intent *entity.PaymentIntent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentIntent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.IntentStatus, reason string) error
}
