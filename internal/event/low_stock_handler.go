package event

import (
	"context"
	"log/slog"
)

const TopicLowStockAlert = "inventory.low_stock"

type LowStockAlertEvent struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

func (s *Service) handleLowStockAlertEvent(ctx context.Context, ev LowStockAlertEvent) error {
	s.logger.WarnContext(ctx, "low stock alert",
		slog.String("product", ev.Name),
		slog.Int("quantity", ev.Quantity),
		slog.Int("threshold", ev.Threshold))
	return nil
}
