package repository

import (
	"context"
	"fmt"

	"github.com/arivera-dev/inventario/internal/model"
	"github.com/arivera-dev/inventario/internal/storage/db"
)

// InventoryRepository reads the catalog schema. Every method is read-only;
// stock mutations belong to external management tooling.
type InventoryRepository interface {
	ListInventory(ctx context.Context) ([]model.InventoryRecord, error)
	ListLowStock(ctx context.Context, threshold int) ([]model.InventoryRecord, error)
	CountByCategory(ctx context.Context) ([]model.GroupCount, error)
	CountBySupplier(ctx context.Context) ([]model.GroupCount, error)
	ListMovements(ctx context.Context) ([]model.Movement, error)
	ListSuggestions(ctx context.Context) ([]string, error)
}

type inventoryRepository struct {
	db db.DB
}

func NewInventoryRepository(db db.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

const inventorySelect = `
	SELECT p.id, p.name, p.quantity, p.sale_price,
	       c.name AS category, s.name AS supplier,
	       p.expiration_date
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN suppliers s ON p.supplier_id = s.id
`

func (r inventoryRepository) ListInventory(ctx context.Context) ([]model.InventoryRecord, error) {
	rows, err := r.db.Query(ctx, inventorySelect+" ORDER BY p.name")
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	return scanInventoryRecords(rows)
}

func (r inventoryRepository) ListLowStock(ctx context.Context, threshold int) ([]model.InventoryRecord, error) {
	rows, err := r.db.Query(ctx, inventorySelect+" WHERE p.quantity <= $1 ORDER BY p.quantity ASC", threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	return scanInventoryRecords(rows)
}

func (r inventoryRepository) CountByCategory(ctx context.Context) ([]model.GroupCount, error) {
	return r.countGroups(ctx, `
		SELECT c.name, COUNT(p.id), COALESCE(SUM(p.quantity), 0)
		FROM categories c
		LEFT JOIN products p ON c.id = p.category_id
		GROUP BY c.id, c.name
		ORDER BY COUNT(p.id) DESC`)
}

func (r inventoryRepository) CountBySupplier(ctx context.Context) ([]model.GroupCount, error) {
	return r.countGroups(ctx, `
		SELECT s.name, COUNT(p.id), COALESCE(SUM(p.quantity), 0)
		FROM suppliers s
		LEFT JOIN products p ON s.id = p.supplier_id
		GROUP BY s.id, s.name
		ORDER BY COUNT(p.id) DESC`)
}

func (r inventoryRepository) countGroups(ctx context.Context, query string) ([]model.GroupCount, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count groups: %w", err)
	}
	defer rows.Close()

	groups := make([]model.GroupCount, 0)
	for rows.Next() {
		var g model.GroupCount
		if err := rows.Scan(&g.Name, &g.TotalProducts, &g.TotalUnits); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r inventoryRepository) ListMovements(ctx context.Context) ([]model.Movement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, p.name AS product, m.movement_type, m.quantity, m.occurred_at,
		       COALESCE(m.description, '')
		FROM inventory_movements m
		JOIN products p ON m.product_id = p.id
		ORDER BY m.occurred_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	movements := make([]model.Movement, 0)
	for rows.Next() {
		var m model.Movement
		if err := rows.Scan(&m.ID, &m.Product, &m.Type, &m.Quantity, &m.OccurredAt, &m.Description); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}

	return movements, rows.Err()
}

func (r inventoryRepository) ListSuggestions(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT name
		FROM products
		WHERE quantity > 0
		ORDER BY name
		LIMIT 20`)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanInventoryRecords(rows rowScanner) ([]model.InventoryRecord, error) {
	records := make([]model.InventoryRecord, 0)
	for rows.Next() {
		var rec model.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Quantity, &rec.SalePrice,
			&rec.Category, &rec.Supplier, &rec.ExpirationDate); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
