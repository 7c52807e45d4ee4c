package queries_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.Packing)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Packing, query.Status())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	require.Error(t, err)
}

func TestGetOrdersByStatusQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersByStatusQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}

func TestNewGetStatusCountsQuery(t *testing.T) {
	query := queries.NewGetStatusCountsQuery()
	require.NoError(t, query.Validate())

	var notConstructed queries.GetStatusCountsQuery
	require.ErrorIs(t, notConstructed.Validate(), queries.ErrGetStatusCountsQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetStaleOrdersQuery(t *testing.T) {
	cutoff := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	query, err := queries.NewGetStaleOrdersQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, cutoff, query.Cutoff())

	_, err = queries.NewGetStaleOrdersQuery(time.Time{})
	require.Error(t, err)
}
