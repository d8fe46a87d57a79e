package trace

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/pttech/storefront/internal/log"
)

func InitTracerProvider(
	c context.Context,
	endpoint string,
	serviceName string,
) (*trace.TracerProvider, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "InitTracerProvider").
		Logger()

	logger.Info().
		Str(log.KeyProcess, "Init TraceExporter").
		Msg("initializing traceExporter")
	traceExporter, err := otlptracegrpc.New(
		c,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		logger.Error().
			Err(err).
			Str(log.KeyProcess, "Init TraceExporter").
			Msgf("failed creating traceExporter with error=%s", err.Error())
		return nil, err
	}
	logger.Info().
		Str(log.KeyProcess, "Init TraceExporter").
		Msg("initialized traceExporter")

	logger.Info().
		Str(log.KeyProcess, "Init TracerProvider").
		Msg("initializing traceProvider")
	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter, trace.WithBatchTimeout(5*time.Second)),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	logger.Info().
		Str(log.KeyProcess, "Init TracerProvider").
		Msg("initialized traceProvider")

	return traceProvider, nil
}
