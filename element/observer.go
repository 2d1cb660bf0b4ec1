package element

import (
	"context"
	"time"

	"github.com/aalemi-dev/mdbridge/observability"
)

// observeDecode notifies the observer about a completed top-level decode if
// one is configured. Recursive decodes report through their root call only.
func (d *Decoder) observeDecode(ctx context.Context, dt DataType, duration time.Duration, nodes int, err error) {
	if d == nil || d.observer == nil {
		return
	}

	var metadata map[string]interface{}
	if d.cfg.ServiceName != "" {
		metadata = map[string]interface{}{"service": d.cfg.ServiceName}
	}

	d.observer.ObserveOperation(observability.OperationContext{
		Context:   ctx,
		Component: componentName,
		Operation: "decode",
		Datatype:  dt.String(),
		Duration:  duration,
		Error:     err,
		Items:     int64(nodes),
		Metadata:  metadata,
	})
}
