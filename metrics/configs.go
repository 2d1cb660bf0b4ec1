package metrics

// Default listen addresses used when the configuration leaves them nil.
const (
	DefaultSystemMetricsAddress      = ":9090"
	DefaultApplicationMetricsAddress = ":9091"
)

// Config carries the settings for the two Prometheus endpoints.
//
// The package exposes:
// 1. System metrics (default :9090): Go runtime, process and build info
// 2. Application metrics (default :9091): metrics created through the Create* methods
type Config struct {
	// SystemMetricsAddress is the listen address of the system metrics
	// HTTP server.
	//
	// Example values:
	//   - ":9090"   → all interfaces, port 9090
	//   - "127.0.0.1:9090" → localhost only
	//   - nil (or omitted) → default ":9090"
	//
	// To disable the endpoint entirely, point it at an empty string:
	//   SystemMetricsAddress: metrics.Ptr(""),
	//
	// This setting can be configured via:
	//   - YAML configuration with the "system_metrics_address" key
	//   - Environment variable METRICS_SYSTEM_ADDRESS
	SystemMetricsAddress *string `yaml:"system_metrics_address" envconfig:"METRICS_SYSTEM_ADDRESS"`

	// ApplicationMetricsAddress is the listen address of the application
	// metrics HTTP server, the one carrying decode and lifetime metrics.
	//
	// Example values:
	//   - ":9091"   → all interfaces, port 9091
	//   - "127.0.0.1:9091" → localhost only
	//   - nil (or omitted) → default ":9091"
	//
	// To disable the endpoint entirely, point it at an empty string:
	//   ApplicationMetricsAddress: metrics.Ptr(""),
	//
	// This setting can be configured via:
	//   - YAML configuration with the "application_metrics_address" key
	//   - Environment variable METRICS_APPLICATION_ADDRESS
	ApplicationMetricsAddress *string `yaml:"application_metrics_address" envconfig:"METRICS_APPLICATION_ADDRESS"`

	// ServiceName is stamped on every metric as a constant "service"
	// label so multi-service deployments can tell the emitters apart.
	//
	// Example:
	//   ServiceName: "ticker-feed"
	//   → metrics include label service="ticker-feed"
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// Ptr returns a pointer to the given string, which is how an endpoint is
// explicitly disabled in configuration.
//
// Example:
//
//	cfg := metrics.Config{
//	    SystemMetricsAddress:      metrics.Ptr(""), // disabled
//	    ApplicationMetricsAddress: nil,             // default
//	    ServiceName:               "ticker-feed",
//	}
func Ptr(s string) *string {
	return &s
}
