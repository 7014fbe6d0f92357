// Package tracing installs the global OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/trace"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/machakos/malaria/pkg/version"
)

// ServiceName is reported as the service.name resource attribute.
const ServiceName = "malaria"

// ShutdownFunc flushes and stops a tracer provider.
type ShutdownFunc func(context.Context) error

// Options configures [Setup].
type Options struct {
	// Endpoint is the OTLP/gRPC collector address (host:port). Empty
	// disables export.
	Endpoint string
	// Insecure disables TLS to the collector.
	Insecure bool
}

// Setup installs a batching OTLP tracer provider as the global provider.
// Without an endpoint the global no-op provider is left in place.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if opts.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
	}

	exp, err := otlptracegrpc.New(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp := NewProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)

	slog.DebugContext(ctx, "tracing enabled", slog.String("endpoint", opts.Endpoint))

	return tp.Shutdown, nil
}

// NewProvider creates a tracer provider tagged with the service resource.
func NewProvider(opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", version.GetVersion()),
	)

	return sdktrace.NewTracerProvider(append([]sdktrace.TracerProviderOption{sdktrace.WithResource(res)}, opts...)...)
}

// Tracer returns a tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
