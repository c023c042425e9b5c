package event

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
)

type Step string

const (
	StepValidated          Step = "validated"
	StepDebited            Step = "debited"
	StepCredited           Step = "credited"
	StepCompensated        Step = "compensated"
	StepCompensationFailed Step = "compensation_failed"
	StepOutcome            Step = "outcome"
)

// Event is one protocol step of one transfer. Emission is the gateway's
// only observable side effect besides the balance mutations themselves.
type Event struct {
	Step       Step            `json:"step"`
	PayerBank  string          `json:"payer_bank"`
	PayerAcct  string          `json:"payer_account"`
	PayeeBank  string          `json:"payee_bank"`
	PayeeAcct  string          `json:"payee_account"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	Error      string          `json:"error,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func New(step Step, payer, payee entity.AccountRef, amount decimal.Decimal) Event {
	return Event{
		Step:       step,
		PayerBank:  payer.BankID,
		PayerAcct:  payer.AccountID,
		PayeeBank:  payee.BankID,
		PayeeAcct:  payee.AccountID,
		Amount:     amount,
		OccurredAt: time.Now(),
	}
}

// Emitter consumes protocol events. Emission must not fail the transfer:
// implementations swallow their own delivery errors.
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

type multi []Emitter

func (m multi) Emit(ctx context.Context, e Event) {
	for _, em := range m {
		em.Emit(ctx, e)
	}
}

func Multi(emitters ...Emitter) Emitter {
	return multi(emitters)
}

type nop struct{}

func (nop) Emit(context.Context, Event) {}

func Nop() Emitter {
	return nop{}
}
