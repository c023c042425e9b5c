package payment_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/repository"
	"github.com/finlane/paycore/internal/infrastructure/memory"
	"github.com/finlane/paycore/internal/usecase/payment"
	"github.com/finlane/paycore/internal/usecase/payment/mocks"
)

func TestCoordinator_InitiatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payerRef := entity.AccountRef{BankID: "B1", AccountID: "A1"}
	payeeRef := entity.AccountRef{BankID: "B2", AccountID: "A2"}
	amount := decimal.NewFromInt(150)

	directory := mocks.NewMockAccountDirectory(ctrl)
	directory.EXPECT().ResolveAccount("U1").Return(payerRef, nil)
	directory.EXPECT().ResolveAccount("U2").Return(payeeRef, nil)

	processor := mocks.NewMockProcessor(ctrl)
	processor.EXPECT().
		ProcessPayment(gomock.Any(), payerRef, payeeRef, amount).
		Return(payment.Result{Status: entity.IntentSuccess})

	intents := memory.NewIntentStore()
	coordinator := payment.NewCoordinator(directory, processor, intents)

	res, intent, err := coordinator.InitiatePayment(context.Background(), "U1", "U2", amount)

	require.NoError(t, err)
	require.True(t, res.Success())
	assert.Equal(t, entity.IntentSuccess, intent.Status())

	stored, err := intents.FindByID(context.Background(), intent.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.IntentSuccess, stored.Status())
	assert.Equal(t, "U1", stored.PayerID())
	assert.Equal(t, "U2", stored.PayeeID())
	assert.True(t, stored.Amount().Equal(amount))
}

func TestCoordinator_InitiatePayment_GatewayFailure_FinalizesIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payerRef := entity.AccountRef{BankID: "B1", AccountID: "A1"}
	payeeRef := entity.AccountRef{BankID: "B2", AccountID: "A2"}
	amount := decimal.NewFromInt(400)

	directory := mocks.NewMockAccountDirectory(ctrl)
	directory.EXPECT().ResolveAccount("U1").Return(payerRef, nil)
	directory.EXPECT().ResolveAccount("U2").Return(payeeRef, nil)

	processor := mocks.NewMockProcessor(ctrl)
	processor.EXPECT().
		ProcessPayment(gomock.Any(), payerRef, payeeRef, amount).
		Return(payment.Result{
			Status: entity.IntentFailed,
			Reason: payment.ReasonDebitFailed,
			Err:    entity.ErrInsufficientFunds,
		})

	intents := memory.NewIntentStore()
	coordinator := payment.NewCoordinator(directory, processor, intents)

	res, intent, err := coordinator.InitiatePayment(context.Background(), "U1", "U2", amount)

	require.NoError(t, err)
	require.False(t, res.Success())
	assert.Equal(t, entity.IntentFailed, intent.Status())
	assert.Equal(t, string(payment.ReasonDebitFailed), intent.Reason())

	stored, err := intents.FindByID(context.Background(), intent.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.IntentFailed, stored.Status())
	assert.Equal(t, string(payment.ReasonDebitFailed), stored.Reason())
}

func TestCoordinator_InitiatePayment_UnknownUser_SkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockAccountDirectory(ctrl)
	directory.EXPECT().
		ResolveAccount("ghost").
		Return(entity.AccountRef{}, repository.ErrNotFound)

	processor := mocks.NewMockProcessor(ctrl)

	intents := memory.NewIntentStore()
	coordinator := payment.NewCoordinator(directory, processor, intents)

	res, intent, err := coordinator.InitiatePayment(context.Background(), "ghost", "U2", decimal.NewFromInt(10))

	require.NoError(t, err)
	require.False(t, res.Success())
	assert.Equal(t, payment.ReasonInvalidParticipants, res.Reason)
	require.ErrorIs(t, res.Err, repository.ErrNotFound)
	assert.Equal(t, entity.IntentFailed, intent.Status())
}

func TestCoordinator_InitiatePayment_IntentCreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockAccountDirectory(ctrl)
	processor := mocks.NewMockProcessor(ctrl)

	intents := mocks.NewMockIntentRepository(ctrl)
	intents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded)

	coordinator := payment.NewCoordinator(directory, processor, intents)

	_, _, err := coordinator.InitiatePayment(context.Background(), "U1", "U2", decimal.NewFromInt(10))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
