package kernel_test

import (
	"testing"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("accepts_non_negative_amounts", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(1800)

		require.NoError(t, err)
		assert.Equal(t, int64(1800), m.Cents())
		assert.Equal(t, "18.00", m.String())
	})

	t.Run("zero_is_valid", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts_max_cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(kernel.MaxCents)

		require.NoError(t, err)
		assert.Equal(t, kernel.MaxCents, m.Cents())
	})

	t.Run("rejects_amounts_above_max", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(kernel.MaxCents + 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	t.Run("rounds_to_nearest_cent", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(8.005)

		require.NoError(t, err)
		assert.Equal(t, int64(801), m.Cents())
	})

	t.Run("exact_decimals_survive", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(2.00)

		require.NoError(t, err)
		assert.Equal(t, int64(200), m.Cents())
		assert.InDelta(t, 2.00, m.Float64(), 0.0001)
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)
		require.Error(t, err)
	})

	t.Run("rejects_amounts_above_max", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(float64(kernel.MaxCents)/100 + 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_and_multiply", func(t *testing.T) {
		burger, _ := kernel.MoneyFromFloat(8.00)
		cola, _ := kernel.MoneyFromFloat(2.00)

		total := burger.MultiplyQuantity(2).Add(cola.MultiplyQuantity(1))

		assert.Equal(t, int64(1800), total.Cents())
		assert.Equal(t, "18.00", total.String())
	})

	t.Run("non_positive_quantity_clamps_to_zero", func(t *testing.T) {
		price, _ := kernel.MoneyFromFloat(8.00)

		assert.True(t, price.MultiplyQuantity(0).IsZero())
		assert.True(t, price.MultiplyQuantity(-3).IsZero())
	})

	t.Run("bounded_inputs_never_wrap", func(t *testing.T) {
		price, err := kernel.NewMoneyFromCents(kernel.MaxCents)
		require.NoError(t, err)

		subtotal := price.MultiplyQuantity(10_000)

		assert.Positive(t, subtotal.Cents())
		assert.Equal(t, kernel.MaxCents*10_000, subtotal.Cents())
	})

	t.Run("equality_is_by_value", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(500)
		b, _ := kernel.MoneyFromFloat(5.00)

		assert.True(t, a.IsEqual(b))
	})
}
