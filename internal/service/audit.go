package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/arivera-dev/inventario/internal/assistant"
	"github.com/arivera-dev/inventario/internal/event"
	"github.com/arivera-dev/inventario/internal/repository"
	"github.com/arivera-dev/inventario/internal/storage/db"
	"github.com/arivera-dev/inventario/pkg/outbox"
)

// AuditService persists a record of each answered catalog query as an
// outbox message, to be relayed to the message broker.
type AuditService struct {
	db            db.DB
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewAuditService(
	db db.DB,
	outboxMsgRepo repository.OutboxMsgRepository,
) *AuditService {
	return &AuditService{
		db:            db,
		outboxMsgRepo: outboxMsgRepo,
	}
}

var _ assistant.Auditor = (*AuditService)(nil)

func (s *AuditService) RecordReply(ctx context.Context, audit assistant.ReplyAudit) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate reply id: %w", err)
	}

	ev := event.AssistantReplyCreatedEvent{
		ReplyID:  id.String(),
		Question: audit.Question,
		Intent:   string(audit.Intent),
		RowCount: audit.RowCount,
	}

	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.outboxMsgRepo.
			WithDB(db).
			CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
				Topic:   event.TopicAssistantReplyCreated,
				Headers: outbox.BuildHeaders(ctx),
				Payload: evBytes,
			}); err != nil {
			return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}
