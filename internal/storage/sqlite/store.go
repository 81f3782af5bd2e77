package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/model"
)

// Store is the simple local product store behind the chat pipeline. It is
// read-only for the pipeline; the bootstrap only seeds sample rows into an
// empty database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database and bootstraps the product
// table.
func NewStore(ctx context.Context, cfg config.SQLite) (*Store, error) {
	sqlDB, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	store := &Store{db: sqlDB}
	if err := store.bootstrap(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("bootstrap sqlite database: %w", err)
	}

	return store, nil
}

// NewStoreWithDB wraps an existing connection, used by tests.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Query runs one read-only statement and materializes all rows as
// column-keyed maps. Zero matching rows return an empty slice.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]model.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	results := make([]model.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}

		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(model.Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return results, nil
}

// ListProducts returns every product, ordered by name.
func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, price, stock, category FROM product ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (s *Store) bootstrap(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS product (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL,
			description TEXT,
			price       REAL NOT NULL,
			stock       INTEGER NOT NULL DEFAULT 0,
			category    TEXT
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create product table: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM product").Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []model.Product{
		{Name: "Producto A", Description: "Descripción del producto A", Price: 29.99, Stock: 50, Category: "Electrónicos"},
		{Name: "Producto B", Description: "Descripción del producto B", Price: 19.99, Stock: 30, Category: "Ropa"},
		{Name: "Producto C", Description: "Descripción del producto C", Price: 39.99, Stock: 0, Category: "Hogar"},
		{Name: "Laptop HP", Description: "Laptop HP Pavilion 15\"", Price: 799.99, Stock: 5, Category: "Electrónicos"},
		{Name: "Mouse Inalámbrico", Description: "Mouse óptico inalámbrico", Price: 25.50, Stock: 100, Category: "Accesorios"},
	}

	for _, p := range seed {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO product (name, description, price, stock, category) VALUES (?, ?, ?, ?, ?)",
			p.Name, p.Description, p.Price, p.Stock, p.Category,
		); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	return nil
}
