package event

import (
	"context"
	"log/slog"
)

const TopicAssistantReplyCreated = "assistant.reply.created"

type AssistantReplyCreatedEvent struct {
	ReplyID  string `json:"reply_id"`
	Question string `json:"question"`
	Intent   string `json:"intent"`
	RowCount int    `json:"row_count"`
}

func (s *Service) handleAssistantReplyCreatedEvent(ctx context.Context, ev AssistantReplyCreatedEvent) error {
	s.logger.InfoContext(ctx, "handling assistant reply created event", slog.Any("event", ev))
	return nil
}
