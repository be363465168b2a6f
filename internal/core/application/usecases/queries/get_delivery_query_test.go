package queries_test

import (
	"testing"

	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryQuery(t *testing.T) {
	orderID, err := kernel.NewOrderID("order-1042")
	require.NoError(t, err)

	query, err := queries.NewGetDeliveryQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.Equal(t, "order-1042", query.OrderID().String())
}

func TestNewGetDeliveryQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetDeliveryQuery(kernel.OrderID{})
	require.Error(t, err)
}

func TestGetDeliveryQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetDeliveryQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetDeliveryQueryIsNotConstructed)
}
