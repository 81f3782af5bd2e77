package dashboard_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/dashboard"
	"github.com/arivera-dev/inventario/internal/model"
)

type fakeInventoryRepo struct {
	inventory []model.InventoryRecord
	lowStock  []model.InventoryRecord

	listCalls int
}

func (f *fakeInventoryRepo) ListInventory(context.Context) ([]model.InventoryRecord, error) {
	f.listCalls++
	return f.inventory, nil
}

func (f *fakeInventoryRepo) ListLowStock(_ context.Context, threshold int) ([]model.InventoryRecord, error) {
	return f.lowStock, nil
}

func (f *fakeInventoryRepo) CountByCategory(context.Context) ([]model.GroupCount, error) {
	return []model.GroupCount{{Name: "Lácteos", TotalProducts: 2, TotalUnits: 12}}, nil
}

func (f *fakeInventoryRepo) CountBySupplier(context.Context) ([]model.GroupCount, error) {
	return []model.GroupCount{{Name: "Distribuidora Norte", TotalProducts: 2, TotalUnits: 12}}, nil
}

func (f *fakeInventoryRepo) ListMovements(context.Context) ([]model.Movement, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) ListSuggestions(context.Context) ([]string, error) {
	return []string{"Leche", "Queso"}, nil
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := &fakeInventoryRepo{
		inventory: []model.InventoryRecord{
			{ID: 1, Name: "Leche", Quantity: 5, SalePrice: 18.5},
			{ID: 2, Name: "Queso", Quantity: 7, SalePrice: 30},
		},
	}
	svc := dashboard.NewService(logger, config.Dashboard{CacheTTL: time.Minute}, repo)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, int64(12), summary.TotalUnits)
	assert.InDelta(t, 302.5, summary.TotalValue, 0.001)
	assert.Len(t, summary.ByCategory, 1)
	assert.Len(t, summary.BySupplier, 1)

	t.Run("Should serve repeated reads from the cache", func(t *testing.T) {
		_, err := svc.Summary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.listCalls)
	})
}

func TestDashboardSummaryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := &fakeInventoryRepo{}
	svc := dashboard.NewService(logger, config.Dashboard{CacheTTL: time.Nanosecond}, repo)

	_, err := svc.Summary(ctx)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
}
