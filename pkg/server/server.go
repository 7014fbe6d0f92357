package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/version"
)

const shutdownTimeout = 5 * time.Second

// Server wraps the Fiber app serving the API.
type Server struct {
	app       *fiber.App
	engine    *diagnosis.Engine
	extractor *extract.Extractor
	metrics   *Metrics
	tracer    trace.Tracer
}

// Opt configures a [Server].
type Opt func(*Server)

// WithMetrics sets the metrics collectors. By default each server gets its
// own.
func WithMetrics(m *Metrics) Opt {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(tracer trace.Tracer) Opt {
	return func(s *Server) {
		s.tracer = tracer
	}
}

// New creates a server with routes and middleware configured.
func New(engine *diagnosis.Engine, extractor *extract.Extractor, opts ...Opt) *Server {
	s := &Server{
		engine:    engine,
		extractor: extractor,
		tracer:    otel.Tracer("server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "malaria",
		ServerHeader: version.UserAgent(),
		ErrorHandler: errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(traceRequests(s.tracer))

	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}),
	))

	v1 := s.app.Group("/api/v1")
	v1.Get("/symptoms", s.handleSymptoms)
	v1.Post("/extract", s.handleExtract)
	v1.Post("/diagnose", s.handleDiagnose)
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()

		err := s.app.ShutdownWithTimeout(shutdownTimeout)
		if err != nil {
			slog.Error("shutdown HTTP server", slog.Any("error", err))
		}
	}()

	slog.InfoContext(ctx, "starting HTTP server", slog.String("address", addr))

	err := s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
