package observability

import (
	"context"
	"time"
)

// Observer is a unified interface for observability across the mdbridge
// packages. It allows external code to observe operations happening inside
// the binding (element decoding, managed-reference bookkeeping) without
// coupling those packages to specific observability implementations
// (metrics, tracing, logging).
//
// This interface is optional - the binding packages work perfectly fine
// without an observer.
type Observer interface {
	// ObserveOperation is called when a binding operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(op OperationContext)
}

// OperationContext contains all information about a completed binding
// operation. This struct is designed to be generic enough to work across
// the element and lifetime packages while providing enough detail for
// comprehensive observability.
type OperationContext struct {
	// Context is the caller's context at the time of the operation, if one
	// was available. Tracing observers use it to parent their spans; it may
	// be nil for operations invoked from engine-internal threads that carry
	// no context of their own.
	Context context.Context

	// Component identifies which mdbridge package performed the operation.
	// Examples: "element", "lifetime"
	Component string

	// Operation describes what operation was performed.
	// Examples:
	//   Decoder:  "decode"
	//   Registry: "pin", "copy", "destroy"
	Operation string

	// Datatype is the declared schema datatype of the element the operation
	// worked on (optional, decoder only).
	// Examples: "FLOAT64", "SEQUENCE", "DATETIME"
	Datatype string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	// nil indicates a successful operation.
	Error error

	// Items counts what the operation touched (optional).
	// Examples:
	//   Decoder:  number of native values produced by the decode
	//   Registry: number of live managed references after the operation
	Items int64

	// Metadata provides additional operation-specific information (optional).
	// This map can contain any extra context that doesn't fit in the
	// standard fields.
	// Examples:
	//   Decoder:  {"stage": "array"}
	//   Registry: {"handle": "42"}
	Metadata map[string]interface{}
}
