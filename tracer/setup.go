package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// TracerClient wraps the OpenTelemetry TracerProvider behind the Tracer
// interface: span creation (current-time and backdated), error recording,
// attributes and cross-service context propagation.
//
// It is safe to share across goroutines. Typical use in this module is
// creating spans around decode and lifetime operations, either live or
// reconstructed after the fact by an observer.
type TracerClient struct {
	tracer *trace.TracerProvider
}

// NewClient builds a TracerClient from the given configuration, installs
// it as the global OpenTelemetry provider and sets up W3C trace context
// plus baggage propagation.
//
// Parameters:
//   - cfg: Configuration for the tracer, including service name, environment and export settings
//
// Returns:
//   - *TracerClient: A configured TracerClient ready for creating spans
//
// When export is enabled an OTLP HTTP exporter is attached; failure to
// initialize it is returned as an error. The provider's resource carries
// the service name and the environment attributes.
//
// Example:
//
//	tc, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "ticker-feed",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, span := tc.StartSpan(context.Background(), "session.handleMessage")
//	defer span.End()
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

// newClientWithContext is NewClient with an explicit context governing
// exporter initialization, which tests use to force the handshake to fail.
func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &TracerClient{tracer: tp}, nil
}
