package assistant_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arivera-dev/inventario/internal/assistant"
	"github.com/arivera-dev/inventario/internal/model"
)

func TestSimpleFormat(t *testing.T) {
	t.Run("Should report stock for one product", func(t *testing.T) {
		rows := []model.Row{{"name": "Producto A", "stock": int64(150)}}

		reply := assistant.SimpleFormat(assistant.IntentStockForProduct, rows)

		assert.Equal(t, "El Producto A tiene 150 unidades en stock.", reply)
	})

	t.Run("Should report a depleted product", func(t *testing.T) {
		rows := []model.Row{{"name": "Producto C", "stock": int64(0)}}

		reply := assistant.SimpleFormat(assistant.IntentStockForProduct, rows)

		assert.Equal(t, "El Producto C está agotado (0 unidades en stock).", reply)
	})

	t.Run("Should report the price of one product", func(t *testing.T) {
		rows := []model.Row{{"name": "Producto A", "price": 25.5}}

		reply := assistant.SimpleFormat(assistant.IntentPriceForProduct, rows)

		assert.Equal(t, "El precio del Producto A es $25.50", reply)
	})

	t.Run("Should list stock for all products", func(t *testing.T) {
		rows := []model.Row{
			{"name": "Producto A", "stock": int64(150)},
			{"name": "Producto C", "stock": int64(0)},
		}

		reply := assistant.SimpleFormat(assistant.IntentStockAll, rows)

		assert.Contains(t, reply, "Stock de todos los productos:")
		assert.Contains(t, reply, "• Producto A: 150 unidades")
		assert.Contains(t, reply, "• Producto C: AGOTADO")
	})

	t.Run("Should return the empty result message", func(t *testing.T) {
		reply := assistant.SimpleFormat(assistant.IntentStockAll, nil)

		assert.Equal(t, "No se encontraron resultados en la base de datos.", reply)
	})
}

func TestCatalogFormatterLowStock(t *testing.T) {
	f := assistant.NewCatalogFormatter(50, 20)

	t.Run("Should cap the display at ten products", func(t *testing.T) {
		rows := make([]model.Row, 12)
		for i := range rows {
			rows[i] = model.Row{"name": fmt.Sprintf("Producto %d", i), "quantity": int64(30)}
		}

		reply := f.Format(assistant.IntentLowStock, "stock bajo", rows)

		assert.Contains(t, reply, "Se encontraron 12 productos con stock bajo")
		assert.Equal(t, 10, strings.Count(reply, "🟡"))
	})

	t.Run("Should flag critical products and recommend replenishment", func(t *testing.T) {
		rows := []model.Row{
			{"name": "Leche", "quantity": int64(5)},
			{"name": "Pan", "quantity": int64(45)},
		}

		reply := f.Format(assistant.IntentLowStock, "stock bajo", rows)

		assert.Contains(t, reply, "🔴 **Leche**: 5 unidades")
		assert.Contains(t, reply, "🟡 **Pan**: 45 unidades")
		assert.Contains(t, reply, "1 productos necesitan reposición urgente")
	})
}

func TestCatalogFormatterOverview(t *testing.T) {
	f := assistant.NewCatalogFormatter(50, 20)

	t.Run("Should total units and value over the full row set", func(t *testing.T) {
		rows := []model.Row{
			{"name": "Arroz", "quantity": int64(3), "sale_price": 10.0, "category": "Granos"},
			{"name": "Frijol", "quantity": int64(4), "sale_price": 2.5, "category": "Granos"},
		}

		reply := f.Format(assistant.IntentStockAll, "inventario", rows)

		assert.Contains(t, reply, "Total productos: 2")
		assert.Contains(t, reply, "Total unidades: 7")
		assert.Contains(t, reply, "Valor estimado inventario: $40.00")
	})

	t.Run("Should group thousands in unit totals", func(t *testing.T) {
		rows := []model.Row{
			{"name": "Azúcar", "quantity": int64(1500), "sale_price": 1.0, "category": "Abarrotes"},
		}

		reply := f.Format(assistant.IntentStockAll, "inventario", rows)

		assert.Contains(t, reply, "Total unidades: 1,500")
		assert.Contains(t, reply, "Valor estimado inventario: $1,500.00")
	})

	t.Run("Should sample five products and count the rest", func(t *testing.T) {
		rows := make([]model.Row, 8)
		for i := range rows {
			rows[i] = model.Row{
				"name":       fmt.Sprintf("Producto %d", i),
				"quantity":   int64(100),
				"sale_price": 1.0,
				"category":   "General",
			}
		}

		reply := f.Format(assistant.IntentStockAll, "inventario", rows)

		assert.Equal(t, 5, strings.Count(reply, "• **Producto"))
		assert.Contains(t, reply, "... y 3 productos más.")
	})

	t.Run("Should warn about low stock rows", func(t *testing.T) {
		rows := []model.Row{
			{"name": "Sal", "quantity": int64(10), "sale_price": 1.0, "category": "Abarrotes"},
			{"name": "Café", "quantity": int64(200), "sale_price": 8.0, "category": "Bebidas"},
		}

		reply := f.Format(assistant.IntentStockAll, "inventario", rows)

		assert.Contains(t, reply, "1 productos con stock ≤ 50 unidades")
	})
}

func TestCatalogFormatterNoRows(t *testing.T) {
	f := assistant.NewCatalogFormatter(50, 20)

	reply := f.Format(assistant.IntentLowStock, "¿Qué productos tienen stock bajo?", nil)

	assert.Contains(t, reply, "No se encontraron resultados para tu consulta: '¿Qué productos tienen stock bajo?'")
}

func TestCatalogFormatterGroups(t *testing.T) {
	f := assistant.NewCatalogFormatter(50, 20)

	rows := []model.Row{
		{"supplier": "Distribuidora Norte", "total_products": int64(5), "total_units": int64(320)},
		{"supplier": "Alimentos del Sur", "total_products": int64(3), "total_units": int64(110)},
	}

	reply := f.Format(assistant.IntentBySupplier, "proveedores", rows)

	assert.Contains(t, reply, "Distribución por proveedores (2 proveedores)")
	assert.Contains(t, reply, "**Distribuidora Norte**: 5 productos, 320 unidades totales")
}
