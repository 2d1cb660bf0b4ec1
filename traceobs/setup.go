package traceobs

import (
	"context"
	"time"

	"github.com/aalemi-dev/mdbridge/observability"
	"github.com/aalemi-dev/mdbridge/tracer"
)

// TraceObserver records a span for every observed binding operation.
// It implements the observability.Observer interface.
type TraceObserver struct {
	tracer tracer.Tracer
}

// NewTraceObserver creates a TraceObserver backed by the given tracer.
//
// Parameters:
//   - t: The tracer used to create spans for observed operations
//
// Returns:
//   - *TraceObserver: An observer ready to be attached to the decoder and
//     registry via their WithObserver methods
func NewTraceObserver(t tracer.Tracer) *TraceObserver {
	return &TraceObserver{tracer: t}
}

// ObserveOperation records a span covering the operation's wall-clock
// interval. The span is parented to the operation's caller context when one
// is present.
func (o *TraceObserver) ObserveOperation(op observability.OperationContext) {
	ctx := op.Context
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now().Add(-op.Duration)
	_, span := o.tracer.StartSpanAt(ctx, op.Component+"."+op.Operation, start)

	attrs := map[string]interface{}{
		"component": op.Component,
		"operation": op.Operation,
	}
	if op.Datatype != "" {
		attrs["datatype"] = op.Datatype
	}
	if op.Items != 0 {
		attrs["items"] = op.Items
	}
	for k, v := range op.Metadata {
		attrs[k] = v
	}
	span.SetAttributes(attrs)

	if op.Error != nil {
		span.RecordError(op.Error)
	}

	span.EndAt(start.Add(op.Duration))
}
