package lifetime

// Component label used when reporting registry operations to an observer.
const componentName = "lifetime"

// Config defines the configuration for the managed-reference registry.
type Config struct {
	// ServiceName identifies the consumer of the registry. It is attached
	// to registry log entries and observer metadata.
	//
	// Example: "ticker-feed"
	ServiceName string
}
