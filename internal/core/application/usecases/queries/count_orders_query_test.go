package queries_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountOrdersQuery_Validate(t *testing.T) {
	query := queries.NewCountOrdersQuery()
	require.NoError(t, query.Validate())
	assert.Contains(t, query.SQL(), "COUNT(*)")
}

func TestCountOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.CountOrdersQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCountOrdersQueryIsNotConstructed)
}
