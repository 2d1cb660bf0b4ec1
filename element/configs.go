package element

// Default component label used when reporting decoder operations to an
// observer.
const componentName = "element"

// Config defines the configuration for the element decoder.
type Config struct {
	// ServiceName identifies the consumer of the decoder. It is attached to
	// decode log entries and observer metadata to distinguish decoders when
	// one process hosts several engine sessions.
	//
	// Example: "ticker-feed"
	ServiceName string
}
