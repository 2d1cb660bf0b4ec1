package element

import (
	"errors"
	"fmt"
)

// Decode error categories. Every failed decode wraps exactly one of these,
// so callers can classify failures with errors.Is without inspecting the
// DecodeError directly.
var (
	// ErrAccessFailure is returned when one of the engine's accessors for a
	// scalar value or sub-element fails. The decode is aborted, not retried.
	ErrAccessFailure = errors.New("element: engine accessor failed")

	// ErrUnsupportedType is returned when a complex or otherwise
	// non-scalar datatype reaches the scalar decode path. This indicates a
	// schema or engine contract violation upstream, never a user input
	// error, and is surfaced rather than silently defaulted.
	ErrUnsupportedType = errors.New("element: datatype not decodable as scalar")

	// ErrConversionFailure is returned when a high-precision datetime
	// cannot be converted into a native timestamp.
	ErrConversionFailure = errors.New("element: datetime conversion failed")
)

// Decode stages, recorded on DecodeError so failures can be logged with the
// point in the tree walk that produced them.
const (
	stageScalar   = "scalar"
	stageRecord   = "record"
	stageArray    = "array"
	stageDatetime = "datetime"
)

// DecodeError describes a failed decode: the stage of the tree walk, the
// declared datatype of the element being decoded, the error category, and
// the engine's underlying error when there is one.
//
// errors.Is matches DecodeError against its category sentinel and against
// the engine's cause.
type DecodeError struct {
	// Stage is the decode stage that failed: "scalar", "record", "array"
	// or "datetime".
	Stage string

	// Datatype is the declared datatype of the element that failed.
	Datatype DataType

	// Category is one of ErrAccessFailure, ErrUnsupportedType or
	// ErrConversionFailure.
	Category error

	// Cause is the engine- or conversion-level error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v (stage=%s datatype=%s): %v", e.Category, e.Stage, e.Datatype, e.Cause)
	}
	return fmt.Sprintf("%v (stage=%s datatype=%s)", e.Category, e.Stage, e.Datatype)
}

// Unwrap exposes both the category sentinel and the underlying cause to
// errors.Is / errors.As.
func (e *DecodeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Category, e.Cause}
	}
	return []error{e.Category}
}

// accessError wraps an engine accessor failure.
func accessError(stage string, dt DataType, cause error) error {
	return &DecodeError{Stage: stage, Datatype: dt, Category: ErrAccessFailure, Cause: cause}
}

// unsupportedError flags a datatype that must never reach the scalar path.
func unsupportedError(dt DataType) error {
	return &DecodeError{Stage: stageScalar, Datatype: dt, Category: ErrUnsupportedType}
}

// conversionError wraps a datetime conversion failure.
func conversionError(dt DataType, cause error) error {
	return &DecodeError{Stage: stageDatetime, Datatype: dt, Category: ErrConversionFailure, Cause: cause}
}
