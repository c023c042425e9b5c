package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/repository"
)

//go:generate mockgen -source=coordinator.go -destination=mocks/processor.go -package=mocks

// Processor is the gateway surface the coordinator delegates to.
type Processor interface {
	ProcessPayment(ctx context.Context, payer, payee entity.AccountRef, amount decimal.Decimal) Result
}

// Coordinator is the front door for transfer requests. It materializes the
// payment intent around the gateway call: every invocation produces exactly
// one terminal intent, whatever the outcome.
type Coordinator struct {
	directory repository.AccountDirectory
	gateway   Processor
	intents   repository.IntentRepository
}

func NewCoordinator(
	directory repository.AccountDirectory,
	gateway Processor,
	intents repository.IntentRepository,
) *Coordinator {
	return &Coordinator{
		directory: directory,
		gateway:   gateway,
		intents:   intents,
	}
}

func (c *Coordinator) InitiatePayment(ctx context.Context, payerID, payeeID string, amount decimal.Decimal) (Result, *entity.PaymentIntent, error) {
	intent := entity.NewPaymentIntent(payerID, payeeID, amount)
	if err := c.intents.Create(ctx, intent); err != nil {
		return Result{}, nil, err
	}

	res := c.execute(ctx, payerID, payeeID, amount)

	if res.Success() {
		if err := intent.MarkSuccess(); err != nil {
			return Result{}, nil, err
		}
	} else {
		if err := intent.MarkFailed(string(res.Reason)); err != nil {
			return Result{}, nil, err
		}
	}

	if err := c.intents.UpdateStatus(ctx, intent.ID(), intent.Status(), intent.Reason()); err != nil {
		return Result{}, nil, err
	}

	return res, intent, nil
}

func (c *Coordinator) execute(ctx context.Context, payerID, payeeID string, amount decimal.Decimal) Result {
	payer, err := c.directory.ResolveAccount(payerID)
	if err != nil {
		return Result{Status: entity.IntentFailed, Reason: ReasonInvalidParticipants, Err: err}
	}

	payee, err := c.directory.ResolveAccount(payeeID)
	if err != nil {
		return Result{Status: entity.IntentFailed, Reason: ReasonInvalidParticipants, Err: err}
	}

	return c.gateway.ProcessPayment(ctx, payer, payee, amount)
}
