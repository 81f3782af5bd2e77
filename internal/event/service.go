package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/arivera-dev/inventario/internal/storage/mq"
)

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		TopicAssistantReplyCreated,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev AssistantReplyCreatedEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal assistant reply created event: %w", err)
			}

			if err := s.handleAssistantReplyCreatedEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle assistant reply created event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register assistant reply created event handler: %w", err)
	}

	if err := s.mqConsumer.RegisterHandler(
		TopicLowStockAlert,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev LowStockAlertEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal low stock alert event: %w", err)
			}

			if err := s.handleLowStockAlertEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle low stock alert event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register low stock alert event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
