package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/model"
	"github.com/arivera-dev/inventario/internal/repository"
)

// Summary is the aggregate inventory view behind the dashboard.
type Summary struct {
	TotalProducts int                     `json:"total_products"`
	TotalUnits    int64                   `json:"total_units"`
	TotalValue    float64                 `json:"total_value"`
	Inventory     []model.InventoryRecord `json:"inventory"`
	ByCategory    []model.GroupCount      `json:"by_category"`
	BySupplier    []model.GroupCount      `json:"by_supplier"`
	GeneratedAt   time.Time               `json:"generated_at"`
}

// Service serves dashboard reads. The summary aggregates are cached with
// a TTL so repeated page loads do not re-run the join queries.
type Service struct {
	logger        *slog.Logger
	cfg           config.Dashboard
	inventoryRepo repository.InventoryRepository

	mu       sync.Mutex
	cached   *Summary
	cachedAt time.Time
}

func NewService(
	logger *slog.Logger,
	cfg config.Dashboard,
	inventoryRepo repository.InventoryRepository,
) *Service {
	return &Service{
		logger:        logger.With(slog.String("service", "dashboard")),
		cfg:           cfg,
		inventoryRepo: inventoryRepo,
	}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < s.cfg.CacheTTL {
		return *s.cached, nil
	}

	summary, err := s.buildSummary(ctx)
	if err != nil {
		return Summary{}, err
	}

	s.cached = &summary
	s.cachedAt = time.Now()

	return summary, nil
}

func (s *Service) buildSummary(ctx context.Context) (Summary, error) {
	inventory, err := s.inventoryRepo.ListInventory(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("inventory repository list inventory: %w", err)
	}

	byCategory, err := s.inventoryRepo.CountByCategory(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("inventory repository count by category: %w", err)
	}

	bySupplier, err := s.inventoryRepo.CountBySupplier(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("inventory repository count by supplier: %w", err)
	}

	var (
		units int64
		value float64
	)
	for _, rec := range inventory {
		units += int64(rec.Quantity)
		value += rec.SalePrice * float64(rec.Quantity)
	}

	return Summary{
		TotalProducts: len(inventory),
		TotalUnits:    units,
		TotalValue:    value,
		Inventory:     inventory,
		ByCategory:    byCategory,
		BySupplier:    bySupplier,
		GeneratedAt:   time.Now(),
	}, nil
}

func (s *Service) LowStock(ctx context.Context, threshold int) ([]model.InventoryRecord, error) {
	records, err := s.inventoryRepo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("inventory repository list low stock: %w", err)
	}

	return records, nil
}

func (s *Service) Movements(ctx context.Context) ([]model.Movement, error) {
	movements, err := s.inventoryRepo.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory repository list movements: %w", err)
	}

	return movements, nil
}

func (s *Service) Suggestions(ctx context.Context) ([]string, error) {
	suggestions, err := s.inventoryRepo.ListSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory repository list suggestions: %w", err)
	}

	return suggestions, nil
}
