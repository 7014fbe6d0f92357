package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/machakos/malaria/pkg/log"
)

// traceRequests runs each request in a span and logs it once handled.
func traceRequests(tracer trace.Tracer) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		ctx, span := tracer.Start(c.Context(), c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		c.SetContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}

			span.RecordError(err)
		}

		span.SetAttributes(
			attribute.String("http.route", c.Route().Path),
			attribute.Int("http.status_code", status),
		)

		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, "server error")
		}

		log.WithContext(ctx).DebugContext(ctx, "handled request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		)

		return err
	}
}
