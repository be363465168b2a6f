package queries_test

import (
	"testing"

	"deliveries/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetAllDeliveriesQuery(t *testing.T) {
	query := queries.NewGetAllDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllDeliveriesQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetAllDeliveriesQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllDeliveriesQueryIsNotConstructed)
}
