package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedo/internal/core/application/usecases/queries"
	"feedo/internal/core/domain/model/kernel"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, orderID, query.OrderID())
	})

	t.Run("empty_order_id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("not_constructed", func(t *testing.T) {
		query := queries.GetOrderQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetClientOrdersQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		clientID := kernel.NewUUID()

		query, err := queries.NewGetClientOrdersQuery(clientID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, clientID, query.ClientID())
	})

	t.Run("empty_client_id", func(t *testing.T) {
		_, err := queries.NewGetClientOrdersQuery(kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("not_constructed", func(t *testing.T) {
		query := queries.GetClientOrdersQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetClientOrdersQueryIsNotConstructed)
	})
}

func TestNewGetPendingOrdersQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		query := queries.NewGetPendingOrdersQuery()
		assert.NoError(t, query.Validate())
	})

	t.Run("not_constructed", func(t *testing.T) {
		query := queries.GetPendingOrdersQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetPendingOrdersQueryIsNotConstructed)
	})
}

func TestNewGetAllCouriersQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		query := queries.NewGetAllCouriersQuery()
		assert.NoError(t, query.Validate())
	})

	t.Run("not_constructed", func(t *testing.T) {
		query := queries.GetAllCouriersQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetAllCouriersQueryIsNotConstructed)
	})
}
