package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/repository"
)

// IntentRepo persists payment intents.
//
// Expected schema:
//
//	CREATE TABLE payment_intents (
//	    id         UUID PRIMARY KEY,
//	    payer_id   TEXT NOT NULL,
//	    payee_id   TEXT NOT NULL,
//	    amount     NUMERIC NOT NULL,
//	    status     TEXT NOT NULL,
//	    reason     TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type IntentRepo struct {
	pool *pgxpool.Pool
}

func NewIntentRepo(pool *pgxpool.Pool) *IntentRepo {
	return &IntentRepo{pool: pool}
}

func (r *IntentRepo) Create(ctx context.Context, intent *entity.PaymentIntent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payment_intents (id, payer_id, payee_id, amount, status, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		intent.ID(), intent.PayerID(), intent.PayeeID(),
		intent.Amount().String(), string(intent.Status()), intent.Reason(), intent.CreatedAt(),
	)
	return err
}

func (r *IntentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentIntent, error) {
	var (
		payerID, payeeID string
		amountStr        string
		status, reason   string
		createdAt        time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT payer_id, payee_id, amount::text, status, reason, created_at
		 FROM payment_intents WHERE id = $1`,
		id,
	).Scan(&payerID, &payeeID, &amountStr, &status, &reason, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("intent %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructPaymentIntent(
		id, payerID, payeeID, amount,
		entity.IntentStatus(status), reason, createdAt,
	), nil
}

func (r *IntentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.IntentStatus, reason string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payment_intents SET status = $1, reason = $2 WHERE id = $3`,
		string(status), reason, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("intent %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
