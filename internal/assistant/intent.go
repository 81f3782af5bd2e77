package assistant

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a user message, drawn from a closed set.
type Intent string

const (
	IntentNone            Intent = "none"
	IntentStockForProduct Intent = "stock_for_product"
	IntentStockAll        Intent = "stock_all"
	IntentPriceForProduct Intent = "price_for_product"
	IntentPriceAll        Intent = "price_all"
	IntentProductsGeneral Intent = "products_general"
	IntentLowStock        Intent = "low_stock"
	IntentExpiringSoon    Intent = "expiring_soon"
	IntentBySupplier      Intent = "by_supplier"
	IntentByCategory      Intent = "by_category"
	IntentMostExpensive   Intent = "most_expensive"
)

// Rule maps a keyword set to an intent. Rules are evaluated in slice order
// and the first match wins, so the order of a rule list is part of the
// classification contract.
type Rule struct {
	Keywords []string

	// Intent is chosen when the keyword set matches.
	Intent Intent

	// EntityIntent, when non-empty, replaces Intent if the message carries a
	// trailing "producto <name>" clause; the extracted name narrows the query.
	EntityIntent Intent
}

// SimpleRules classifies messages against the simple product store.
// Stock wins over price, price wins over the generic product query.
var SimpleRules = []Rule{
	{
		Keywords:     []string{"stock", "inventario", "cantidad"},
		Intent:       IntentStockAll,
		EntityIntent: IntentStockForProduct,
	},
	{
		Keywords:     []string{"precio", "costo", "vale", "cuesta"},
		Intent:       IntentPriceAll,
		EntityIntent: IntentPriceForProduct,
	},
	{
		Keywords: []string{"producto", "artículo", "item"},
		Intent:   IntentProductsGeneral,
	},
}

// CatalogRules classifies messages against the richer catalog schema. The
// specific queries (low stock, expirations, suppliers, categories, price
// ranking) are checked before the generic stock overview, whose keyword set
// overlaps with all of them.
var CatalogRules = []Rule{
	{
		Keywords: []string{"stock bajo", "poco stock", "stock menor", "bajo stock"},
		Intent:   IntentLowStock,
	},
	{
		Keywords: []string{"vencen", "caducan", "expiran", "vencimiento"},
		Intent:   IntentExpiringSoon,
	},
	{
		Keywords: []string{"proveedor", "proveedores"},
		Intent:   IntentBySupplier,
	},
	{
		Keywords: []string{"categoria", "categorías", "categorias"},
		Intent:   IntentByCategory,
	},
	{
		Keywords: []string{"caros", "caro", "precio alto", "más caros"},
		Intent:   IntentMostExpensive,
	},
	{
		Keywords: []string{"stock", "productos", "inventario", "tengo"},
		Intent:   IntentStockAll,
	},
}

var entityRe = regexp.MustCompile(`producto\s+([a-zA-Z0-9\s]+)`)

// Classify lowercases the message and tests it against the rules in order.
// It returns the matched intent and, for entity-aware rules, the product
// name extracted from the first "producto <name>" clause (trimmed). An empty
// or unmatched message yields IntentNone.
func Classify(message string, rules []Rule) (Intent, string) {
	lower := strings.ToLower(message)
	if strings.TrimSpace(lower) == "" {
		return IntentNone, ""
	}

	for _, rule := range rules {
		if !containsAny(lower, rule.Keywords) {
			continue
		}

		if rule.EntityIntent != "" {
			if m := entityRe.FindStringSubmatch(lower); m != nil {
				return rule.EntityIntent, strings.TrimSpace(m[1])
			}
		}

		return rule.Intent, ""
	}

	return IntentNone, ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
