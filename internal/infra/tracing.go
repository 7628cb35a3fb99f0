package infra

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/bininfo"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/observability"
)

// Tracing installs the global tracer provider. With tracing disabled the otel no-op
// provider stays in place.
func Tracing(conf *appconfig.Config, lc fx.Lifecycle) error {
	if !conf.TracingEnabled {
		return nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			attribute.Bool("devMode", conf.DevMode),
		)),
	}
	for _, name := range conf.TracingExporters {
		exporter, err := traceExporter(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tracerProvider := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	log.Info().
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("infra: tracing: enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracerProvider.Shutdown(ctx)
		},
	})
	return nil
}

func traceExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case "otlp":
		return otlptracegrpc.New(context.Background())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, errors.Errorf("infra: tracing: unknown exporter %q", name)
	}
}
