package assistant

import "fmt"

// Query is a parameterized SQL statement selected from the static catalog.
type Query struct {
	SQL  string
	Args []any
}

// SimpleQuery returns the query for an intent against the simple product
// store (SQLite, `?` placeholders). Entities narrow by case-insensitive
// substring match on the product name, always through parameter binding.
func SimpleQuery(intent Intent, entity string) (Query, error) {
	switch intent {
	case IntentStockForProduct:
		return Query{
			SQL:  "SELECT name, stock FROM product WHERE LOWER(name) LIKE ?",
			Args: []any{"%" + entity + "%"},
		}, nil
	case IntentStockAll:
		return Query{SQL: "SELECT name, stock FROM product ORDER BY name LIMIT 50"}, nil
	case IntentPriceForProduct:
		return Query{
			SQL:  "SELECT name, price FROM product WHERE LOWER(name) LIKE ?",
			Args: []any{"%" + entity + "%"},
		}, nil
	case IntentPriceAll:
		return Query{SQL: "SELECT name, price FROM product ORDER BY name LIMIT 50"}, nil
	case IntentProductsGeneral:
		return Query{SQL: "SELECT id, name, description, price, stock, category FROM product ORDER BY name LIMIT 50"}, nil
	default:
		return Query{}, fmt.Errorf("no simple query for intent %q", intent)
	}
}

const inventorySelect = `
SELECT p.id, p.name, p.quantity, p.sale_price,
       c.name AS category, s.name AS supplier,
       p.expiration_date
FROM products p
LEFT JOIN categories c ON p.category_id = c.id
LEFT JOIN suppliers s ON p.supplier_id = s.id
`

// CatalogQuery returns the query for an intent against the richer catalog
// schema (Postgres, `$n` placeholders). lowStockThreshold bounds the
// low-stock listing.
func CatalogQuery(intent Intent, lowStockThreshold int) (Query, error) {
	switch intent {
	case IntentStockAll:
		return Query{SQL: inventorySelect + `
WHERE p.quantity > 0
ORDER BY p.name
LIMIT 50`}, nil
	case IntentLowStock:
		return Query{
			SQL: inventorySelect + `
WHERE p.quantity <= $1
ORDER BY p.quantity ASC
LIMIT 50`,
			Args: []any{lowStockThreshold},
		}, nil
	case IntentExpiringSoon:
		return Query{SQL: `
SELECT p.id, p.name, p.quantity, p.expiration_date,
       c.name AS category, s.name AS supplier,
       (p.expiration_date - CURRENT_DATE) AS days_to_expiry
FROM products p
LEFT JOIN categories c ON p.category_id = c.id
LEFT JOIN suppliers s ON p.supplier_id = s.id
WHERE p.expiration_date <= CURRENT_DATE + INTERVAL '30 days'
ORDER BY p.expiration_date ASC
LIMIT 50`}, nil
	case IntentBySupplier:
		return Query{SQL: `
SELECT s.name AS supplier,
       COUNT(p.id) AS total_products,
       COALESCE(SUM(p.quantity), 0) AS total_units
FROM suppliers s
LEFT JOIN products p ON s.id = p.supplier_id
GROUP BY s.id, s.name
ORDER BY total_products DESC`}, nil
	case IntentByCategory:
		return Query{SQL: `
SELECT c.name AS category,
       COUNT(p.id) AS total_products,
       COALESCE(SUM(p.quantity), 0) AS total_units
FROM categories c
LEFT JOIN products p ON c.id = p.category_id
GROUP BY c.id, c.name
ORDER BY total_products DESC`}, nil
	case IntentMostExpensive:
		return Query{SQL: `
SELECT p.name, p.sale_price, p.quantity,
       c.name AS category, s.name AS supplier
FROM products p
LEFT JOIN categories c ON p.category_id = c.id
LEFT JOIN suppliers s ON p.supplier_id = s.id
ORDER BY p.sale_price DESC
LIMIT 10`}, nil
	default:
		return Query{}, fmt.Errorf("no catalog query for intent %q", intent)
	}
}
