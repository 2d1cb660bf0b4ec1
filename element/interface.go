package element

import (
	"github.com/aalemi-dev/mdbridge/hptime"
)

// Element is the engine-owned, self-describing data node the decoder walks.
// It is read-only from the binding's perspective: every method is an
// accessor onto state the external engine owns, and any accessor may fail
// if the engine's underlying call does.
//
// Exactly one of {null, array, complex, scalar} governs how an element
// decodes, checked in that order. A complex element that is also an array
// is handled by the array path, which decodes each slot as a record.
//
// Implementations are provided by the engine adapter (out of scope for this
// module) and by test fakes.
type Element interface {
	// Datatype returns the declared schema datatype of the element.
	Datatype() DataType

	// IsNull reports whether the element carries no value at all.
	IsNull() bool

	// IsArray reports whether the element holds repeated values.
	IsArray() bool

	// IsComplexType reports whether the element is record-shaped
	// (a sequence or choice with named sub-elements).
	IsComplexType() bool

	// NumValues returns the number of value slots in an array element.
	NumValues() int

	// NumElements returns the number of named sub-elements of a complex
	// element.
	NumElements() int

	// Name returns the element's declared schema name.
	Name() string

	// ElementAt returns the i-th named sub-element of a complex element.
	ElementAt(index int) (Element, error)

	// ValueAsElement returns the i-th slot of a complex-array element as an
	// element handle.
	ValueAsElement(index int) (Element, error)

	// TypeDefinition returns the element's schema type definition, used to
	// determine once whether an array's element type is complex. May be nil
	// for scalar elements.
	TypeDefinition() TypeDefinition

	// Scalar accessors. The index selects the slot of an array element;
	// non-array elements are read at index 0. Calling an accessor that does
	// not match the declared datatype is engine-defined and reported as an
	// accessor failure.

	// BoolValue returns the boolean at the given slot.
	BoolValue(index int) (bool, error)

	// Int64Value returns the integer at the given slot. Byte, Int32 and
	// Int64 elements all read through this accessor.
	Int64Value(index int) (int64, error)

	// Float64Value returns the floating-point value at the given slot.
	// Float32 elements widen to float64 through this accessor.
	Float64Value(index int) (float64, error)

	// StringValue returns the text at the given slot. Char and Enumeration
	// elements share this accessor.
	StringValue(index int) (string, error)

	// BytesValue returns the raw byte payload at the given slot.
	BytesValue(index int) ([]byte, error)

	// DatetimeValue returns the high-precision datetime at the given slot.
	DatetimeValue(index int) (hptime.HighPrecision, error)
}

// TypeDefinition is the queryable schema type definition of an element.
type TypeDefinition interface {
	// IsComplexType reports whether the defined type is record-shaped.
	IsComplexType() bool
}
