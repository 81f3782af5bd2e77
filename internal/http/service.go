package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/arivera-dev/inventario/internal/assistant"
	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/dashboard"
	"github.com/arivera-dev/inventario/internal/http/apierr"
	"github.com/arivera-dev/inventario/internal/http/metric"
	"github.com/arivera-dev/inventario/internal/http/middleware"
	"github.com/arivera-dev/inventario/internal/http/swagger"
	"github.com/arivera-dev/inventario/internal/storage/sqlite"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg          config.HTTP
	assistantCfg config.Assistant
	logger       *slog.Logger
	metrics      *metric.Metrics
	metricsReg   *prometheus.Registry

	simpleSvc    assistant.QueryService
	catalogSvc   assistant.QueryService
	dashboardSvc *dashboard.Service
	productStore *sqlite.Store
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	assistantCfg config.Assistant,
	log *slog.Logger,
	simpleSvc assistant.QueryService,
	catalogSvc assistant.QueryService,
	dashboardSvc *dashboard.Service,
	productStore *sqlite.Store,
) *Service {
	metricsReg := prometheus.NewRegistry()
	metricsReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Service{
		cfg:          cfg,
		assistantCfg: assistantCfg,
		logger:       log.With(slog.String("service", "http")),
		metrics:      metric.New(metricsReg),
		metricsReg:   metricsReg,
		simpleSvc:    simpleSvc,
		catalogSvc:   catalogSvc,
		dashboardSvc: dashboardSvc,
		productStore: productStore,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	chat := newChatHandler(s)
	products := newProductHandler(s)
	dashboards := newDashboardHandler(s)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chat.handleChat)
		r.Post("/assistant/query", chat.handleAssistantQuery)
		r.Get("/assistant/suggestions", chat.handleSuggestions)
		r.Get("/products", products.handleListProducts)
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", dashboards.handleSummary)
			r.Get("/low-stock", dashboards.handleLowStock)
			r.Get("/movements", dashboards.handleMovements)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write([]byte("ok"))
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metricsReg, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

func (s *Service) respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
