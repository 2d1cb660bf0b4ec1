package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns two independent Prometheus registries, each with its own
// HTTP server:
// 1. System metrics (Go runtime, process, build info) on SystemServer
// 2. Application metrics (everything the binding defines) on ApplicationServer
//
// Keeping the two apart lets operators scrape runtime health and
// binding-level metrics on different schedules and with different access
// rules.
type Metrics struct {
	// SystemServer serves the /metrics endpoint for Go runtime, process
	// and build info metrics.
	// Endpoint: SystemMetricsAddress (default: :9090)
	SystemServer *http.Server

	// ApplicationServer serves the /metrics endpoint for metrics created
	// through CreateCounter, CreateGauge, CreateHistogram and CreateSummary.
	// Endpoint: ApplicationMetricsAddress (default: :9091)
	ApplicationServer *http.Server

	// SystemRegistry holds the system-level collectors.
	SystemRegistry *prometheus.Registry

	// ApplicationRegistry holds every metric the application creates
	// through the Create* methods.
	ApplicationRegistry *prometheus.Registry

	// wrappedApplicationRegisterer adds the constant service label to every
	// application metric at registration time.
	wrappedApplicationRegisterer prometheus.Registerer
}

// NewMetrics builds a Metrics instance from the given configuration.
//
// Two endpoints come up:
//
// 1. System metrics (default :9090):
//   - Go runtime metrics (goroutines, GC stats, heap usage)
//   - Process metrics (CPU time, memory, file descriptors)
//   - Build info
//
// 2. Application metrics (default :9091):
//   - Only what the application registers through the Create* methods,
//     for example decode counters and the live-reference gauge
//
// Parameters:
//   - cfg: Configuration for the metrics servers, including addresses and service name
//
// Returns:
//   - *Metrics: A configured Metrics instance ready for lifecycle management
//     and Fx module integration
//
// Every metric on both registries carries a constant `service` label so
// dashboards can filter per consuming service.
//
// Setting an address to the empty string disables that endpoint entirely;
// a nil address means use the default.
//
// Example:
//
//	cfg := metrics.Config{
//	    SystemMetricsAddress:      ":9090",
//	    ApplicationMetricsAddress: ":9091",
//	    ServiceName:               "ticker-feed",
//	}
//	m := metrics.NewMetrics(cfg)
//	go m.SystemServer.ListenAndServe()
//	go m.ApplicationServer.ListenAndServe()
//
// Access metrics at:
//   - System metrics: http://localhost:9090/metrics
//   - Application metrics: http://localhost:9091/metrics
func NewMetrics(cfg Config) *Metrics {
	m := &Metrics{}

	// empty address disables an endpoint, nil falls back to the default
	if addr := resolveAddr(cfg.SystemMetricsAddress, DefaultSystemMetricsAddress); addr != "" {
		reg := prometheus.NewRegistry()
		serviceRegisterer(reg, cfg.ServiceName).MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
		m.SystemRegistry = reg
		m.SystemServer = metricsServer(addr, reg)
	}

	if addr := resolveAddr(cfg.ApplicationMetricsAddress, DefaultApplicationMetricsAddress); addr != "" {
		reg := prometheus.NewRegistry()
		m.ApplicationRegistry = reg
		m.wrappedApplicationRegisterer = serviceRegisterer(reg, cfg.ServiceName)
		m.ApplicationServer = metricsServer(addr, reg)
	}

	return m
}

func resolveAddr(addr *string, fallback string) string {
	if addr != nil {
		return *addr
	}
	return fallback
}

// serviceRegisterer stamps the constant service label onto everything
// registered through it.
func serviceRegisterer(reg *prometheus.Registry, service string) prometheus.Registerer {
	return prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, reg)
}

func metricsServer(addr string, reg *prometheus.Registry) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
}
