package lifetime

import (
	"strconv"
	"time"

	"github.com/aalemi-dev/mdbridge/observability"
)

// observe notifies the observer about a registry operation if one is
// configured. Items carries the number of live references after the
// operation so gauge-style observers can track outstanding engine-held
// references directly.
func (r *Registry) observe(operation string, duration time.Duration, live int64, handle Handle, err error) {
	if r == nil || r.observer == nil {
		return
	}

	metadata := map[string]interface{}{
		"handle": strconv.FormatUint(uint64(handle), 10),
	}
	if r.cfg.ServiceName != "" {
		metadata["service"] = r.cfg.ServiceName
	}

	r.observer.ObserveOperation(observability.OperationContext{
		Component: componentName,
		Operation: operation,
		Duration:  duration,
		Error:     err,
		Items:     live,
		Metadata:  metadata,
	})
}
