package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/event"
	"github.com/finlane/paycore/internal/domain/repository"
)

type Reason string

const (
	ReasonNone                           Reason = ""
	ReasonInvalidParticipants            Reason = "INVALID_PARTICIPANTS"
	ReasonInvalidAmount                  Reason = "INVALID_AMOUNT"
	ReasonDebitFailed                    Reason = "DEBIT_FAILED"
	ReasonCreditFailedCompensated        Reason = "CREDIT_FAILED_COMPENSATED"
	ReasonCreditFailedCompensationFailed Reason = "CREDIT_FAILED_COMPENSATION_FAILED"
)

type Result struct {
	Status entity.IntentStatus
	Reason Reason
	Err    error
}

func (r Result) Success() bool {
	return r.Status == entity.IntentSuccess
}

// Gateway runs the coordination protocol: validate, debit the payer's bank,
// credit the payee's bank, and compensate the payer if the credit leg fails
// after the debit already committed. It holds no per-transfer state.
type Gateway struct {
	banks   repository.BankRegistry
	emitter event.Emitter
}

func NewGateway(banks repository.BankRegistry, emitter event.Emitter) *Gateway {
	return &Gateway{banks: banks, emitter: emitter}
}

// ProcessPayment moves amount from payer to payee. Total funds across the
// two accounts are conserved for every outcome except
// CREDIT_FAILED_COMPENSATION_FAILED, which is surfaced as its own reason
// and never folded into an ordinary failure.
//
// Same-bank transfers take the same debit-then-credit path as cross-bank
// ones; per-account serialization makes each leg atomic either way.
func (g *Gateway) ProcessPayment(ctx context.Context, payer, payee entity.AccountRef, amount decimal.Decimal) Result {
	if !amount.IsPositive() {
		return g.fail(ctx, payer, payee, amount, ReasonInvalidAmount, entity.ErrInvalidAmount)
	}
	if payer.IsZero() || payee.IsZero() || payer == payee {
		return g.fail(ctx, payer, payee, amount, ReasonInvalidParticipants, errors.New("payer and payee must resolve to distinct accounts"))
	}

	payerBank, err := g.banks.Bank(payer.BankID)
	if err != nil {
		return g.fail(ctx, payer, payee, amount, ReasonInvalidParticipants, err)
	}
	payeeBank, err := g.banks.Bank(payee.BankID)
	if err != nil {
		return g.fail(ctx, payer, payee, amount, ReasonInvalidParticipants, err)
	}

	g.emitter.Emit(ctx, event.New(event.StepValidated, payer, payee, amount))

	if err := payerBank.ProcessDebit(ctx, payer.AccountID, amount); err != nil {
		return g.fail(ctx, payer, payee, amount, ReasonDebitFailed, err)
	}
	g.emitter.Emit(ctx, event.New(event.StepDebited, payer, payee, amount))

	creditErr := payeeBank.ProcessCredit(ctx, payee.AccountID, amount)
	if creditErr == nil {
		g.emitter.Emit(ctx, event.New(event.StepCredited, payer, payee, amount))
		return g.finish(ctx, payer, payee, amount, Result{Status: entity.IntentSuccess})
	}

	// The debit already committed, so the payer must be made whole before
	// any terminal outcome is reported.
	if compErr := payerBank.ProcessCredit(ctx, payer.AccountID, amount); compErr != nil {
		e := event.New(event.StepCompensationFailed, payer, payee, amount)
		e.Error = compErr.Error()
		g.emitter.Emit(ctx, e)
		return g.finish(ctx, payer, payee, amount, Result{
			Status: entity.IntentFailed,
			Reason: ReasonCreditFailedCompensationFailed,
			Err:    errors.Join(creditErr, compErr),
		})
	}

	g.emitter.Emit(ctx, event.New(event.StepCompensated, payer, payee, amount))
	return g.finish(ctx, payer, payee, amount, Result{
		Status: entity.IntentFailed,
		Reason: ReasonCreditFailedCompensated,
		Err:    creditErr,
	})
}

func (g *Gateway) fail(ctx context.Context, payer, payee entity.AccountRef, amount decimal.Decimal, reason Reason, err error) Result {
	return g.finish(ctx, payer, payee, amount, Result{
		Status: entity.IntentFailed,
		Reason: reason,
		Err:    err,
	})
}

func (g *Gateway) finish(ctx context.Context, payer, payee entity.AccountRef, amount decimal.Decimal, res Result) Result {
	e := event.New(event.StepOutcome, payer, payee, amount)
	e.Status = string(res.Status)
	e.Reason = string(res.Reason)
	if res.Err != nil {
		e.Error = res.Err.Error()
	}
	g.emitter.Emit(ctx, e)
	return res
}
