package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/version"
)

const shutdownTimeout = 5 * time.Second

// Server exposes symptom extraction and diagnosis as MCP tools.
type Server struct {
	server    *mcp.Server
	engine    *diagnosis.Engine
	extractor *extract.Extractor
	tracer    trace.Tracer
	address   string
}

// ServerOpt configures a [Server].
type ServerOpt func(*Server)

// WithTracer sets the tracer used for tool call spans.
func WithTracer(tracer trace.Tracer) ServerOpt {
	return func(s *Server) {
		s.tracer = tracer
	}
}

// NewServer creates a new MCP server. An empty address serves over stdio,
// otherwise over streamable HTTP.
func NewServer(address string, engine *diagnosis.Engine, extractor *extract.Extractor, opts ...ServerOpt) *Server {
	impl := &mcp.Implementation{
		Name:    name,
		Version: version.GetVersion(),
	}

	s := &Server{
		address:   address,
		server:    mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
		engine:    engine,
		extractor: extractor,
		tracer:    otel.Tracer("mcp"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_symptoms",
		Description: "List the symptom identifiers accepted by the diagnose tool, with display titles and the phrases that detect them in text.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
		},
	}, WithTracing(s.tracer, s.handleListSymptoms))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_symptoms",
		Description: "Detect known symptoms in a free-text description using keyword matching. Returns the detected identifiers and the phrase that matched each one.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": textSchema("Description of the symptoms, e.g. 'high fever and feeling very tired'."),
			},
			Required: []string{"text"},
		},
	}, WithTracing(s.tracer, s.handleExtractSymptoms))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "diagnose",
		Description: "Estimate the likelihood of malaria. Provide 'symptoms' (identifiers from list_symptoms), 'text' (a free-text description), or both. With neither, no symptoms are assumed. Returns a label, a severity tier, the reasoning and a disclaimer.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"symptoms": symptomsSchema(),
				"text":     textSchema("Free-text description of the symptoms."),
			},
		},
	}, WithTracing(s.tracer, s.handleDiagnose))
}

func (s *Server) Server() *mcp.Server {
	return s.server
}

// Serve runs the server until ctx is canceled or the transport closes.
func (s *Server) Serve(ctx context.Context) error {
	slog.InfoContext(ctx, "starting MCP server", slog.String("address", s.address))

	if s.address == "" {
		err := s.serveStdio(ctx)
		if err != nil {
			return fmt.Errorf("serve stdio: %w", err)
		}

		return nil
	}

	err := s.serveHTTP(ctx)
	if err != nil {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	return nil
}

func (s *Server) serveHTTP(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	server := &http.Server{
		Addr:    s.address,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.Error("shutdown MCP server", slog.Any("error", err))
		}
	}()

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}

func (s *Server) serveStdio(ctx context.Context) error {
	t := mcp.NewLoggingTransport(mcp.NewStdioTransport(), os.Stderr)

	err := s.server.Run(ctx, t)
	if err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
