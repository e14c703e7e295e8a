package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	registry := testRegistry(t)

	products := Generate(registry, 60, 7)
	require.Len(t, products, 60)

	seen := map[string]bool{}
	for _, p := range products {
		require.NoError(t, p.Validate())
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		_, ok := registry.Resolve(p.Category)
		assert.True(t, ok, "unknown category %s", p.Category)
		assert.NotEmpty(t, p.Reviews)
		for _, r := range p.Reviews {
			assert.Equal(t, p.ID, r.ProductID)
		}
	}

	t.Run("deterministic for a seed", func(t *testing.T) {
		again := Generate(registry, 60, 7)
		assert.Equal(t, ids(products), ids(again))
		assert.Equal(t, products[10].Colors, again[10].Colors)
		assert.True(t, products[10].Price.Equal(again[10].Price))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, Generate(registry, 0, 1))
		assert.Empty(t, Generate(nil, 10, 1))
	})
}
