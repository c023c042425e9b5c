package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlane/paycore/internal/domain/entity"
)

func TestPaymentIntent_StartsPending(t *testing.T) {
	intent := entity.NewPaymentIntent("U1", "U2", decimal.NewFromInt(150))

	assert.Equal(t, entity.IntentPending, intent.Status())
	assert.Equal(t, "U1", intent.PayerID())
	assert.Equal(t, "U2", intent.PayeeID())
	assert.Empty(t, intent.Reason())
}

func TestPaymentIntent_MarkSuccess_IsTerminal(t *testing.T) {
	intent := entity.NewPaymentIntent("U1", "U2", decimal.NewFromInt(150))

	require.NoError(t, intent.MarkSuccess())
	assert.Equal(t, entity.IntentSuccess, intent.Status())

	require.ErrorIs(t, intent.MarkFailed("DEBIT_FAILED"), entity.ErrIntentFinalized)
	require.ErrorIs(t, intent.MarkSuccess(), entity.ErrIntentFinalized)
	assert.Equal(t, entity.IntentSuccess, intent.Status())
}

func TestPaymentIntent_MarkFailed_IsTerminal(t *testing.T) {
	intent := entity.NewPaymentIntent("U1", "U2", decimal.NewFromInt(150))

	require.NoError(t, intent.MarkFailed("DEBIT_FAILED"))
	assert.Equal(t, entity.IntentFailed, intent.Status())
	assert.Equal(t, "DEBIT_FAILED", intent.Reason())

	require.ErrorIs(t, intent.MarkSuccess(), entity.ErrIntentFinalized)
	assert.Equal(t, entity.IntentFailed, intent.Status())
	assert.Equal(t, "DEBIT_FAILED", intent.Reason())
}
