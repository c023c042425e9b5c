package logging

import (
	"context"
	"log/slog"

	"github.com/finlane/paycore/internal/domain/event"
)

// Emitter writes protocol events to the structured log. Compensation
// failures are the escalation path and log at Error level.
type Emitter struct {
	logger *slog.Logger
}

func NewEmitter(logger *slog.Logger) *Emitter {
	return &Emitter{logger: logger}
}

func (e *Emitter) Emit(ctx context.Context, ev event.Event) {
	attrs := []any{
		"step", string(ev.Step),
		"payer_bank", ev.PayerBank,
		"payer_account", ev.PayerAcct,
		"payee_bank", ev.PayeeBank,
		"payee_account", ev.PayeeAcct,
		"amount", ev.Amount.String(),
	}
	if ev.Status != "" {
		attrs = append(attrs, "status", ev.Status)
	}
	if ev.Reason != "" {
		attrs = append(attrs, "reason", ev.Reason)
	}
	if ev.Error != "" {
		attrs = append(attrs, "error", ev.Error)
	}

	if ev.Step == event.StepCompensationFailed {
		e.logger.ErrorContext(ctx, "unresolved funds discrepancy", attrs...)
		return
	}
	e.logger.InfoContext(ctx, "payment protocol step", attrs...)
}
