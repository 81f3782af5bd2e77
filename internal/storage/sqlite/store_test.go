package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera-dev/inventario/internal/storage/sqlite"
)

func TestStoreQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("Should materialize rows as column-keyed maps", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT name, stock FROM product").
			WithArgs("%laptop%").
			WillReturnRows(sqlmock.NewRows([]string{"name", "stock"}).
				AddRow("Laptop HP", int64(5)))

		store := sqlite.NewStoreWithDB(db)

		rows, err := store.Query(ctx, "SELECT name, stock FROM product WHERE LOWER(name) LIKE ?", "%laptop%")
		require.NoError(t, err)

		require.Len(t, rows, 1)
		assert.Equal(t, "Laptop HP", rows[0].Str("name"))
		assert.Equal(t, 5, rows[0].Int("stock"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should convert byte slices to strings", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT name FROM product").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).
				AddRow([]byte("Producto A")))

		store := sqlite.NewStoreWithDB(db)

		rows, err := store.Query(ctx, "SELECT name FROM product")
		require.NoError(t, err)

		require.Len(t, rows, 1)
		assert.Equal(t, "Producto A", rows[0]["name"])
	})

	t.Run("Should return an empty slice for zero rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT name, stock FROM product").
			WillReturnRows(sqlmock.NewRows([]string{"name", "stock"}))

		store := sqlite.NewStoreWithDB(db)

		rows, err := store.Query(ctx, "SELECT name, stock FROM product")
		require.NoError(t, err)

		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("Should propagate query errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT name FROM product").
			WillReturnError(errors.New("disk I/O error"))

		store := sqlite.NewStoreWithDB(db)

		_, err = store.Query(ctx, "SELECT name FROM product")
		assert.ErrorContains(t, err, "disk I/O error")
	})
}

func TestStoreListProducts(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, description, price, stock, category FROM product ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock", "category"}).
			AddRow(4, "Laptop HP", "Laptop HP Pavilion 15\"", 799.99, 5, "Electrónicos").
			AddRow(1, "Producto A", "Descripción del producto A", 29.99, 50, "Electrónicos"))

	store := sqlite.NewStoreWithDB(db)

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Laptop HP", products[0].Name)
	assert.Equal(t, 799.99, products[0].Price)
	assert.Equal(t, 50, products[1].Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
