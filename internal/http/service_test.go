package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera-dev/inventario/internal/assistant"
	"github.com/arivera-dev/inventario/internal/config"
	internalhttp "github.com/arivera-dev/inventario/internal/http"
)

type fakeQueryService struct {
	answer assistant.Answer
	err    error

	gotMessage string
}

func (f *fakeQueryService) Reply(_ context.Context, message string) (assistant.Answer, error) {
	f.gotMessage = message
	return f.answer, f.err
}

func newTestRouter(simple, catalog assistant.QueryService) *chi.Mux {
	svc := internalhttp.New(
		config.HTTP{Port: 5000},
		config.Assistant{LowStockThreshold: 50, CriticalStockThreshold: 20},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		simple,
		catalog,
		nil,
		nil,
	)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	svc.RegisterHandlers(r)
	return r
}

func TestChatEndpoint(t *testing.T) {
	t.Run("Should reply to a valid message", func(t *testing.T) {
		simple := &fakeQueryService{answer: assistant.Answer{
			Reply: "El Producto A tiene 150 unidades en stock.",
		}}
		r := newTestRouter(simple, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"message": "¿Cuánto stock tiene el producto A?"}`))
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "El Producto A tiene 150 unidades en stock.", body["reply"])
		assert.Equal(t, "¿Cuánto stock tiene el producto A?", simple.gotMessage)
	})

	t.Run("Should reject an empty message", func(t *testing.T) {
		r := newTestRouter(&fakeQueryService{}, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"message": "   "}`))
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusBadRequest, resp.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "EMPTY_MESSAGE", body["code"])
		assert.NotEmpty(t, body["error"])
	})

	t.Run("Should reject a missing message field", func(t *testing.T) {
		r := newTestRouter(&fakeQueryService{}, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		r := newTestRouter(&fakeQueryService{}, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":`))
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestAssistantQueryEndpoint(t *testing.T) {
	catalog := &fakeQueryService{answer: assistant.Answer{
		Reply:  "⚠️ **Se encontraron 1 productos con stock bajo:**",
		Intent: assistant.IntentLowStock,
		SQL:    "SELECT 1",
		Count:  1,
	}}
	r := newTestRouter(&fakeQueryService{}, catalog)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/query",
		strings.NewReader(`{"message": "¿Qué productos tienen stock bajo?"}`))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var answer assistant.Answer
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &answer))
	assert.Equal(t, assistant.IntentLowStock, answer.Intent)
	assert.Equal(t, "SELECT 1", answer.SQL)
	assert.Equal(t, 1, answer.Count)
}

func TestHealthzEndpoint(t *testing.T) {
	r := newTestRouter(&fakeQueryService{}, &fakeQueryService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", resp.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(&fakeQueryService{}, &fakeQueryService{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "go_goroutines")
}

func TestCorrelationIDHeader(t *testing.T) {
	r := newTestRouter(&fakeQueryService{answer: assistant.Answer{Reply: "hola"}}, &fakeQueryService{})

	t.Run("Should echo an incoming correlation id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"message": "inventario"}`))
		req.Header.Set("X-Correlation-ID", "abc-123")
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, "abc-123", resp.Header().Get("X-Correlation-ID"))
	})

	t.Run("Should generate a correlation id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.NotEmpty(t, resp.Header().Get("X-Correlation-ID"))
	})
}
