package tracer

// Config carries the settings for the OpenTelemetry tracer: who the service
// is, which environment it runs in, and whether spans leave the process.
type Config struct {
	// ServiceName identifies the service that generates the spans. Use a
	// stable, descriptive name; it becomes the service.name resource
	// attribute on every span.
	//
	// Example values: "ticker-feed", "refdata-gateway"
	ServiceName string

	// AppEnv names the deployment environment so traces from different
	// environments stay separable in the backend. Common values are
	// "development", "staging" and "production".
	//
	// It is recorded as the "deployment.environment" and "environment"
	// resource attributes.
	AppEnv string

	// EnableExport controls whether spans are shipped to a collector.
	// When true the tracer configures an OTLP HTTP exporter; when false
	// spans stay in process.
	//
	// Leaving it false still keeps tracing functional for context
	// propagation, which is usually what development setups want.
	EnableExport bool
}
