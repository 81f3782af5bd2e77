package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arivera-dev/inventario/internal/assistant"
)

func TestClassifySimpleRules(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantIntent assistant.Intent
		wantEntity string
	}{
		{
			name:       "stock question for a product",
			message:    "¿Cuánto stock tiene el producto A?",
			wantIntent: assistant.IntentStockForProduct,
			wantEntity: "a",
		},
		{
			name:       "stock question without product",
			message:    "Muéstrame el inventario",
			wantIntent: assistant.IntentStockAll,
		},
		{
			name:       "price question for a product",
			message:    "¿Cuál es el precio del producto Laptop HP?",
			wantIntent: assistant.IntentPriceForProduct,
			wantEntity: "laptop hp",
		},
		{
			name:       "price question without product",
			message:    "¿Cuánto cuesta todo?",
			wantIntent: assistant.IntentPriceAll,
		},
		{
			name:       "general product question",
			message:    "¿Cuántos productos tengo?",
			wantIntent: assistant.IntentProductsGeneral,
		},
		{
			name:       "stock wins over the generic product rule",
			message:    "cantidad de productos disponibles",
			wantIntent: assistant.IntentStockAll,
		},
		{
			name:       "stock wins over the price rule",
			message:    "¿Cuál es el precio y el stock del inventario?",
			wantIntent: assistant.IntentStockAll,
		},
		{
			name:       "unrelated message",
			message:    "hola, ¿cómo estás?",
			wantIntent: assistant.IntentNone,
		},
		{
			name:       "empty message",
			message:    "",
			wantIntent: assistant.IntentNone,
		},
		{
			name:       "whitespace only",
			message:    "   ",
			wantIntent: assistant.IntentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, entity := assistant.Classify(tt.message, assistant.SimpleRules)

			assert.Equal(t, tt.wantIntent, intent)
			assert.Equal(t, tt.wantEntity, entity)
		})
	}
}

func TestClassifyCatalogRules(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantIntent assistant.Intent
	}{
		{
			name:       "low stock beats the generic stock rule",
			message:    "¿Qué productos tienen stock bajo?",
			wantIntent: assistant.IntentLowStock,
		},
		{
			name:       "expirations beat the generic stock rule",
			message:    "¿Cuántos productos vencen pronto?",
			wantIntent: assistant.IntentExpiringSoon,
		},
		{
			name:       "supplier distribution",
			message:    "¿Cuántos productos hay por proveedor?",
			wantIntent: assistant.IntentBySupplier,
		},
		{
			name:       "category distribution",
			message:    "Muéstrame los productos por categoria",
			wantIntent: assistant.IntentByCategory,
		},
		{
			name:       "most expensive",
			message:    "¿Cuáles son los productos más caros?",
			wantIntent: assistant.IntentMostExpensive,
		},
		{
			name:       "generic stock overview",
			message:    "¿Cuántos productos tengo?",
			wantIntent: assistant.IntentStockAll,
		},
		{
			name:       "unmatched message",
			message:    "recomiéndame una receta",
			wantIntent: assistant.IntentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, _ := assistant.Classify(tt.message, assistant.CatalogRules)

			assert.Equal(t, tt.wantIntent, intent)
		})
	}
}
