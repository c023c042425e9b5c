package integration_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/event"
	"github.com/finlane/paycore/internal/infrastructure/memory"
	"github.com/finlane/paycore/internal/usecase/payment"
)

type stack struct {
	payerAcc    *entity.Account
	payeeAcc    *entity.Account
	coordinator *payment.Coordinator
	intents     *memory.IntentStore
}

func newStack(t *testing.T, payerBalance, payeeBalance int64) *stack {
	t.Helper()

	bank1 := entity.NewBank("B1")
	bank2 := entity.NewBank("B2")
	payerAcc, err := bank1.OpenAccount("A1", decimal.NewFromInt(payerBalance))
	require.NoError(t, err)
	payeeAcc, err := bank2.OpenAccount("A2", decimal.NewFromInt(payeeBalance))
	require.NoError(t, err)

	banks := memory.NewBankRegistry()
	banks.Register(bank1)
	banks.Register(bank2)

	directory := memory.NewAccountDirectory()
	directory.Register(entity.NewUser("U1", "Alice", entity.AccountRef{BankID: "B1", AccountID: "A1"}))
	directory.Register(entity.NewUser("U2", "Bob", entity.AccountRef{BankID: "B2", AccountID: "A2"}))

	intents := memory.NewIntentStore()
	gateway := payment.NewGateway(banks, event.Nop())

	return &stack{
		payerAcc:    payerAcc,
		payeeAcc:    payeeAcc,
		coordinator: payment.NewCoordinator(directory, gateway, intents),
		intents:     intents,
	}
}

// Scenario from the original fixture: 500/200, transfer 150 succeeds, the
// follow-up 400 bounces off the reduced balance and changes nothing.
func TestTransferFlow_SequentialScenarios(t *testing.T) {
	s := newStack(t, 500, 200)
	ctx := context.Background()

	res, intent, err := s.coordinator.InitiatePayment(ctx, "U1", "U2", decimal.NewFromInt(150))
	require.NoError(t, err)
	require.True(t, res.Success())
	assert.Equal(t, entity.IntentSuccess, intent.Status())
	assert.True(t, s.payerAcc.Balance().Equal(decimal.NewFromInt(350)))
	assert.True(t, s.payeeAcc.Balance().Equal(decimal.NewFromInt(350)))

	res, intent, err = s.coordinator.InitiatePayment(ctx, "U1", "U2", decimal.NewFromInt(400))
	require.NoError(t, err)
	require.False(t, res.Success())
	assert.Equal(t, payment.ReasonDebitFailed, res.Reason)
	assert.Equal(t, entity.IntentFailed, intent.Status())
	assert.True(t, s.payerAcc.Balance().Equal(decimal.NewFromInt(350)))
	assert.True(t, s.payeeAcc.Balance().Equal(decimal.NewFromInt(350)))

	stored, err := s.intents.FindByID(ctx, intent.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.IntentFailed, stored.Status())
}

func TestTransferFlow_DoubleSpending(t *testing.T) {
	s := newStack(t, 1000, 0)
	ctx := context.Background()

	const goroutines = 10
	var wg sync.WaitGroup
	var successCount, failedCount atomic.Int32

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			res, _, err := s.coordinator.InitiatePayment(ctx, "U1", "U2", decimal.NewFromInt(1000))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if res.Success() {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successCount.Load(), "exactly one transfer may spend the balance")
	assert.Equal(t, int32(goroutines-1), failedCount.Load())
	assert.True(t, s.payerAcc.Balance().Equal(decimal.Zero))
	assert.True(t, s.payeeAcc.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestTransferFlow_ConcurrentDisjointPairs(t *testing.T) {
	bank := entity.NewBank("B1")
	accounts := make([]*entity.Account, 4)
	for i, id := range []string{"A1", "A2", "A3", "A4"} {
		acc, err := bank.OpenAccount(id, decimal.NewFromInt(100))
		require.NoError(t, err)
		accounts[i] = acc
	}

	banks := memory.NewBankRegistry()
	banks.Register(bank)
	gateway := payment.NewGateway(banks, event.Nop())

	ref := func(id string) entity.AccountRef {
		return entity.AccountRef{BankID: "B1", AccountID: id}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res := gateway.ProcessPayment(context.Background(), ref("A1"), ref("A2"), decimal.NewFromInt(50))
		assert.True(t, res.Success())
	}()
	go func() {
		defer wg.Done()
		res := gateway.ProcessPayment(context.Background(), ref("A3"), ref("A4"), decimal.NewFromInt(50))
		assert.True(t, res.Success())
	}()
	wg.Wait()

	assert.True(t, accounts[0].Balance().Equal(decimal.NewFromInt(50)))
	assert.True(t, accounts[1].Balance().Equal(decimal.NewFromInt(150)))
	assert.True(t, accounts[2].Balance().Equal(decimal.NewFromInt(50)))
	assert.True(t, accounts[3].Balance().Equal(decimal.NewFromInt(150)))
}
