package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera-dev/inventario/internal/assistant"
)

func TestSimpleQuery(t *testing.T) {
	t.Run("Should bind the entity as a parameter", func(t *testing.T) {
		q, err := assistant.SimpleQuery(assistant.IntentStockForProduct, "laptop")
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "LIKE ?")
		assert.NotContains(t, q.SQL, "laptop")
		assert.Equal(t, []any{"%laptop%"}, q.Args)
	})

	t.Run("Should bind the entity for price lookups", func(t *testing.T) {
		q, err := assistant.SimpleQuery(assistant.IntentPriceForProduct, "producto a")
		require.NoError(t, err)

		assert.Equal(t, []any{"%producto a%"}, q.Args)
	})

	t.Run("Should cap the all-product listings", func(t *testing.T) {
		for _, intent := range []assistant.Intent{
			assistant.IntentStockAll,
			assistant.IntentPriceAll,
			assistant.IntentProductsGeneral,
		} {
			q, err := assistant.SimpleQuery(intent, "")
			require.NoError(t, err)

			assert.Contains(t, q.SQL, "LIMIT 50")
			assert.Empty(t, q.Args)
		}
	})

	t.Run("Should reject intents without a query", func(t *testing.T) {
		_, err := assistant.SimpleQuery(assistant.IntentNone, "")
		assert.Error(t, err)
	})
}

func TestCatalogQuery(t *testing.T) {
	t.Run("Should bind the low stock threshold", func(t *testing.T) {
		q, err := assistant.CatalogQuery(assistant.IntentLowStock, 50)
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "quantity <= $1")
		assert.Contains(t, q.SQL, "ORDER BY p.quantity ASC")
		assert.Equal(t, []any{50}, q.Args)
	})

	t.Run("Should compute days to expiry", func(t *testing.T) {
		q, err := assistant.CatalogQuery(assistant.IntentExpiringSoon, 50)
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "days_to_expiry")
		assert.Contains(t, q.SQL, "INTERVAL '30 days'")
	})

	t.Run("Should aggregate per supplier and category", func(t *testing.T) {
		for _, intent := range []assistant.Intent{
			assistant.IntentBySupplier,
			assistant.IntentByCategory,
		} {
			q, err := assistant.CatalogQuery(intent, 50)
			require.NoError(t, err)

			assert.Contains(t, q.SQL, "total_products")
			assert.Contains(t, q.SQL, "total_units")
			assert.Contains(t, q.SQL, "ORDER BY total_products DESC")
		}
	})

	t.Run("Should rank by sale price", func(t *testing.T) {
		q, err := assistant.CatalogQuery(assistant.IntentMostExpensive, 50)
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "ORDER BY p.sale_price DESC")
		assert.Contains(t, q.SQL, "LIMIT 10")
	})

	t.Run("Should reject intents without a query", func(t *testing.T) {
		_, err := assistant.CatalogQuery(assistant.IntentPriceForProduct, 50)
		assert.Error(t, err)
	})
}
