package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/event"
	"github.com/arivera-dev/inventario/internal/model"
	"github.com/arivera-dev/inventario/internal/repository"
	"github.com/arivera-dev/inventario/internal/storage/db"
	"github.com/arivera-dev/inventario/pkg/outbox"
)

// Service periodically scans the catalog for products at or below the
// configured stock threshold and emits an alert event for each one.
// A product is alerted once and not again until its stock recovers.
type Service struct {
	cfg           config.Alert
	logger        *slog.Logger
	db            db.DB
	inventoryRepo repository.InventoryRepository
	outboxMsgRepo repository.OutboxMsgRepository

	alerted  map[int64]struct{}
	stopChan chan struct{}
}

func NewService(
	cfg config.Alert,
	logger *slog.Logger,
	db db.DB,
	inventoryRepo repository.InventoryRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) *Service {
	return &Service{
		cfg:           cfg,
		logger:        logger.With(slog.String("service", "alert")),
		db:            db,
		inventoryRepo: inventoryRepo,
		outboxMsgRepo: outboxMsgRepo,
		alerted:       make(map[int64]struct{}),
		stopChan:      make(chan struct{}),
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		s.run(ctx)
	}()

	return func() {
		close(s.stopChan)
		select {
		case <-stoppedChan:
		case <-time.After(5 * time.Second):
			cancel()
		}
	}
}

func (s *Service) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-time.After(s.cfg.Interval):
			if err := s.scan(ctx); err != nil {
				s.logger.ErrorContext(ctx, "error scanning low stock", slog.Any("error", err))
			}
		}
	}
}

func (s *Service) scan(ctx context.Context) error {
	records, err := s.inventoryRepo.ListLowStock(ctx, s.cfg.Threshold)
	if err != nil {
		return fmt.Errorf("inventory repository list low stock: %w", err)
	}

	low := make(map[int64]struct{}, len(records))
	fresh := make([]model.InventoryRecord, 0, len(records))
	for _, rec := range records {
		low[rec.ID] = struct{}{}
		if _, ok := s.alerted[rec.ID]; !ok {
			fresh = append(fresh, rec)
		}
	}

	// Products back above the threshold become eligible for alerting again.
	for id := range s.alerted {
		if _, ok := low[id]; !ok {
			delete(s.alerted, id)
		}
	}

	if len(fresh) == 0 {
		return nil
	}

	s.logger.InfoContext(ctx, "emitting low stock alerts", slog.Int("count", len(fresh)))

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		repo := s.outboxMsgRepo.WithDB(db)
		for _, rec := range fresh {
			ev := event.LowStockAlertEvent{
				ProductID: rec.ID,
				Name:      rec.Name,
				Quantity:  rec.Quantity,
				Threshold: s.cfg.Threshold,
			}

			evBytes, err := json.Marshal(ev)
			if err != nil {
				return fmt.Errorf("marshal event: %w", err)
			}

			if err := repo.CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
				Topic:   event.TopicLowStockAlert,
				Headers: outbox.BuildHeaders(ctx),
				Payload: evBytes,
			}); err != nil {
				return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	for _, rec := range fresh {
		s.alerted[rec.ID] = struct{}{}
	}

	return nil
}
