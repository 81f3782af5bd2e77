package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/arivera-dev/inventario/internal/ai"
	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/model"
)

// Querier executes one read-only statement and materializes all rows. Zero
// matching rows yield an empty slice, not an error.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]model.Row, error)
}

// Answer is the assistant's structured reply to one message.
type Answer struct {
	Reply  string      `json:"reply"`
	Intent Intent      `json:"intent"`
	SQL    string      `json:"sql,omitempty"`
	Count  int         `json:"count"`
	Rows   []model.Row `json:"results,omitempty"`
}

// QueryService answers free-text inventory questions. Both schema variants
// implement it; the concrete store and AI client are injected.
type QueryService interface {
	Reply(ctx context.Context, message string) (Answer, error)
}

// SimpleService answers against the simple local product store. Unmatched
// messages go to the AI as plain conversation.
type SimpleService struct {
	logger *slog.Logger
	store  Querier
	ai     ai.Client
}

func NewSimpleService(logger *slog.Logger, store Querier, aiClient ai.Client) *SimpleService {
	return &SimpleService{
		logger: logger.With(slog.String("service", "assistant.simple")),
		store:  store,
		ai:     aiClient,
	}
}

func (s *SimpleService) Reply(ctx context.Context, message string) (Answer, error) {
	intent, entity := Classify(message, SimpleRules)

	if intent == IntentNone {
		text, err := s.ai.GenerateText(ctx, fallbackPrompt(message))
		if err != nil {
			s.logger.WarnContext(ctx, "ai fallback failed", slog.Any("error", err))
			return Answer{Reply: msgAIApology, Intent: intent}, nil
		}
		return Answer{Reply: text, Intent: intent}, nil
	}

	q, err := SimpleQuery(intent, entity)
	if err != nil {
		return Answer{}, err
	}

	rows, err := s.store.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "query failed",
			slog.String("intent", string(intent)), slog.Any("error", err))
		return Answer{Reply: msgDataAccessFailed, Intent: intent}, nil
	}

	if len(rows) == 0 {
		return Answer{Reply: msgProductNotFound, Intent: intent, SQL: q.SQL}, nil
	}

	return Answer{
		Reply:  SimpleFormat(intent, rows),
		Intent: intent,
		SQL:    q.SQL,
		Count:  len(rows),
		Rows:   rows,
	}, nil
}

// Auditor records answered catalog queries for the event pipeline. Failures
// are logged, never surfaced to the user.
type Auditor interface {
	RecordReply(ctx context.Context, audit ReplyAudit) error
}

// ReplyAudit describes one answered catalog query.
type ReplyAudit struct {
	Question string
	Intent   Intent
	RowCount int
}

// CatalogService answers against the richer catalog schema. Unmatched
// messages fall back to AI-generated SQL; interpretations prefer the AI and
// degrade to the deterministic formatter.
type CatalogService struct {
	logger    *slog.Logger
	cfg       config.Assistant
	store     Querier
	ai        ai.Client
	formatter CatalogFormatter
	auditor   Auditor
}

// NewCatalogService creates a catalog query service. auditor may be nil.
func NewCatalogService(
	logger *slog.Logger,
	cfg config.Assistant,
	store Querier,
	aiClient ai.Client,
	auditor Auditor,
) *CatalogService {
	return &CatalogService{
		logger:    logger.With(slog.String("service", "assistant.catalog")),
		cfg:       cfg,
		store:     store,
		ai:        aiClient,
		formatter: NewCatalogFormatter(cfg.LowStockThreshold, cfg.CriticalStockThreshold),
		auditor:   auditor,
	}
}

func (s *CatalogService) Reply(ctx context.Context, message string) (Answer, error) {
	intent, _ := Classify(message, CatalogRules)

	var q Query
	if intent != IntentNone {
		var err error
		q, err = CatalogQuery(intent, s.cfg.LowStockThreshold)
		if err != nil {
			return Answer{}, err
		}
	} else {
		sql, err := s.generateSQL(ctx, message)
		if err != nil {
			s.logger.WarnContext(ctx, "ai sql generation failed, using stock overview",
				slog.Any("error", err))
			q, _ = CatalogQuery(IntentStockAll, s.cfg.LowStockThreshold)
		} else {
			q = Query{SQL: sql}
		}
	}

	rows, err := s.store.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "query failed",
			slog.String("intent", string(intent)), slog.Any("error", err))
		return Answer{Reply: msgDataAccessFailed, Intent: intent}, nil
	}

	reply := s.interpret(ctx, intent, message, rows)

	if s.auditor != nil && len(rows) > 0 {
		if err := s.auditor.RecordReply(ctx, ReplyAudit{
			Question: message,
			Intent:   intent,
			RowCount: len(rows),
		}); err != nil {
			s.logger.WarnContext(ctx, "recording reply audit failed", slog.Any("error", err))
		}
	}

	return Answer{
		Reply:  reply,
		Intent: intent,
		SQL:    strings.TrimSpace(q.SQL),
		Count:  len(rows),
		Rows:   rows,
	}, nil
}

var (
	sqlFenceRe   = regexp.MustCompile("(?i)```sql|```")
	errNotSelect = errors.New("generated statement is not a SELECT")
)

// generateSQL asks the AI for a read-only statement answering the question.
// Anything that is not a single SELECT is rejected.
func (s *CatalogService) generateSQL(ctx context.Context, question string) (string, error) {
	text, err := s.ai.GenerateText(ctx, sqlPrompt(question))
	if err != nil {
		return "", err
	}

	sql := strings.TrimSpace(sqlFenceRe.ReplaceAllString(text, ""))
	if !strings.HasPrefix(strings.ToUpper(sql), "SELECT") {
		return "", errNotSelect
	}

	return sql, nil
}

func (s *CatalogService) interpret(ctx context.Context, intent Intent, question string, rows []model.Row) string {
	if len(rows) == 0 {
		return s.formatter.Format(intent, question, rows)
	}

	resultsJSON, err := json.MarshalIndent(rows, "", "  ")
	if err == nil {
		text, aiErr := s.ai.GenerateText(ctx, interpretPrompt(question, string(resultsJSON)))
		if aiErr == nil {
			return text
		}
		s.logger.WarnContext(ctx, "ai interpretation failed, using deterministic formatting",
			slog.Any("error", aiErr))
	}

	return s.formatter.Format(intent, question, rows)
}
