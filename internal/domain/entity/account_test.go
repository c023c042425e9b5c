package entity_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlane/paycore/internal/domain/entity"
)

func TestAccount_Debit(t *testing.T) {
	acc := entity.NewAccount("A1", decimal.NewFromInt(500))

	require.NoError(t, acc.Debit(decimal.NewFromInt(150)))
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(350)))
}

func TestAccount_Debit_InsufficientFunds(t *testing.T) {
	acc := entity.NewAccount("A1", decimal.NewFromInt(350))

	err := acc.Debit(decimal.NewFromInt(400))

	require.ErrorIs(t, err, entity.ErrInsufficientFunds)
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(350)), "failed debit must not mutate the balance")
}

func TestAccount_Debit_NonPositiveAmount(t *testing.T) {
	acc := entity.NewAccount("A1", decimal.NewFromInt(100))

	require.ErrorIs(t, acc.Debit(decimal.Zero), entity.ErrInvalidAmount)
	require.ErrorIs(t, acc.Debit(decimal.NewFromInt(-5)), entity.ErrInvalidAmount)
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(100)))
}

func TestAccount_Credit(t *testing.T) {
	acc := entity.NewAccount("A2", decimal.NewFromInt(200))

	require.NoError(t, acc.Credit(decimal.NewFromInt(150)))
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(350)))
}

func TestAccount_Credit_NonPositiveAmount(t *testing.T) {
	acc := entity.NewAccount("A2", decimal.NewFromInt(200))

	require.ErrorIs(t, acc.Credit(decimal.Zero), entity.ErrInvalidAmount)
	require.ErrorIs(t, acc.Credit(decimal.NewFromInt(-5)), entity.ErrInvalidAmount)
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(200)))
}

func TestAccount_ConcurrentDebits_NoOverdraft(t *testing.T) {
	acc := entity.NewAccount("A1", decimal.NewFromInt(1000))

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = acc.Debit(decimal.NewFromInt(100))
		}()
	}
	wg.Wait()

	// 1000 covers exactly ten 100-unit debits; the rest must be rejected
	// against the up-to-date balance, never a stale one.
	assert.True(t, acc.Balance().Equal(decimal.Zero), "balance went to %s", acc.Balance())
}
