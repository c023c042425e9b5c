package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrIntentFinalized = errors.New("payment intent already finalized")

type IntentStatus string

const (
	IntentPending IntentStatus = "PENDING"
	IntentSuccess IntentStatus = "SUCCESS"
	IntentFailed  IntentStatus = "FAILED"
)

// PaymentIntent is the durable record of one transfer attempt. It holds
// participant identifiers, never object references, so it can outlive the
// in-memory objects involved. Status moves from PENDING to exactly one of
// SUCCESS or FAILED and never again.
type PaymentIntent struct {
	id        uuid.UUID
	payerID   string
	payeeID   string
	amount    decimal.Decimal
	status    IntentStatus
	reason    string
	createdAt time.Time
}

func NewPaymentIntent(payerID, payeeID string, amount decimal.Decimal) *PaymentIntent {
	return &PaymentIntent{
		id:        uuid.New(),
		payerID:   payerID,
		payeeID:   payeeID,
		amount:    amount,
		status:    IntentPending,
		createdAt: time.Now(),
	}
}

func ReconstructPaymentIntent(
	id uuid.UUID,
	payerID, payeeID string,
	amount decimal.Decimal,
	status IntentStatus,
	reason string,
	createdAt time.Time,
) *PaymentIntent {
	return &PaymentIntent{
		id:        id,
		payerID:   payerID,
		payeeID:   payeeID,
		amount:    amount,
		status:    status,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (i *PaymentIntent) ID() uuid.UUID {
	return i.id
}

func (i *PaymentIntent) PayerID() string {
	return i.payerID
}

func (i *PaymentIntent) PayeeID() string {
	return i.payeeID
}

func (i *PaymentIntent) Amount() decimal.Decimal {
	return i.amount
}

func (i *PaymentIntent) Status() IntentStatus {
	return i.status
}

func (i *PaymentIntent) Reason() string {
	return i.reason
}

func (i *PaymentIntent) CreatedAt() time.Time {
	return i.createdAt
}

func (i *PaymentIntent) MarkSuccess() error {
	if i.status != IntentPending {
		return ErrIntentFinalized
	}
	i.status = IntentSuccess
	return nil
}

func (i *PaymentIntent) MarkFailed(reason string) error {
	if i.status != IntentPending {
		return ErrIntentFinalized
	}
	i.status = IntentFailed
	i.reason = reason
	return nil
}
