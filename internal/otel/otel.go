package otel

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/contrib/propagators/ot"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel/metric"
	"github.com/pttech/storefront/internal/otel/trace"
)

var Tracer = otel.Tracer("github.com/pttech/storefront")

type ShutdownFunc func(context.Context) error

func newPropagator() propagation.TextMapPropagator {
	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
		jaeger.Jaeger{},
		ot.OT{},
	)
	return propagator
}

func InitOtelSdk(
	c context.Context,
	serviceName string,
	endpoint string,
) (shutdownFuncs []ShutdownFunc, err error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "InitOtelSdk").
		Str(log.KeyEndpoint, endpoint).
		Logger()

	logger.Info().
		Str(log.KeyProcess, "Init Propagator").
		Msg("initializing otel propagator")
	propagator := newPropagator()
	otel.SetTextMapPropagator(propagator)
	logger.Info().
		Str(log.KeyProcess, "Init Propagator").
		Msg("initialized otel propagator")

	logger.Info().
		Str(log.KeyProcess, "Init TracerProvider").
		Msg("initializing otel tracerProvider")
	tracerProvider, err := trace.InitTracerProvider(c, endpoint, serviceName)
	if err != nil {
		logger.Error().
			Err(err).
			Str(log.KeyProcess, "Init TracerProvider").
			Msgf("failed initializing otel tracerProvider with error=%s", err.Error())
		return nil, err
	}
	otel.SetTracerProvider(tracerProvider)
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	logger.Info().
		Str(log.KeyProcess, "Init TracerProvider").
		Msg("initialized otel tracerProvider")

	logger.Info().
		Str(log.KeyProcess, "Init MeterProvider").
		Msg("initializing meterProvider")
	meterProvider, err := metric.InitMeterProvider(c, endpoint)
	if err != nil {
		logger.Error().
			Err(err).
			Str(log.KeyProcess, "Init MeterProvider").
			Msgf("failed initializing otel meterProvider with error=%s", err.Error())
		return shutdownFuncs, err
	}
	otel.SetMeterProvider(meterProvider)
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	logger.Info().
		Str(log.KeyProcess, "Init MeterProvider").
		Msg("initialized meterProvider")

	return shutdownFuncs, nil
}

func ShutdownOtel(c context.Context, shutdownFuncs []ShutdownFunc) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var joined error
	for _, shutdown := range shutdownFuncs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := shutdown(c); err != nil {
				mu.Lock()
				joined = errors.Join(joined, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return joined
}
