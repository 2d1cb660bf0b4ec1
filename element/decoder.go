package element

import (
	"context"
	"time"

	"github.com/aalemi-dev/mdbridge/hptime"
	"github.com/aalemi-dev/mdbridge/logger"
	"github.com/aalemi-dev/mdbridge/observability"
)

// ElementDecoder is the decoding contract exposed to consumers of this
// package. It is implemented by the concrete *Decoder type.
type ElementDecoder interface {
	// Decode converts an engine element tree into a native Value tree.
	Decode(ctx context.Context, el Element) (Value, error)
}

// Decoder converts engine-owned element trees into native Value trees.
//
// The decoder is stateless apart from its configuration and optional
// observability hooks, so a single instance can be shared freely. It runs
// synchronously on whatever thread the engine delivers a message on and
// performs no locking of its own: the caller is expected to already hold
// the runtime's normal execution discipline.
type Decoder struct {
	cfg Config

	// log receives a structured entry per failed decode (optional).
	log *logger.LoggerClient

	// observer provides optional observability hooks for tracking decode
	// operations.
	observer observability.Observer
}

// NewDecoder creates a decoder with the given configuration and no
// observability hooks attached.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{cfg: cfg}
}

// WithObserver attaches an observer and returns the decoder for chaining.
// When using FX, the observer is injected automatically instead.
func (d *Decoder) WithObserver(observer observability.Observer) *Decoder {
	d.observer = observer
	return d
}

// WithLogger attaches a logger and returns the decoder for chaining.
func (d *Decoder) WithLogger(log *logger.LoggerClient) *Decoder {
	d.log = log
	return d
}

// defaultDecoder backs the package-level Decode for callers that need no
// configuration or observability.
var defaultDecoder = NewDecoder(Config{})

// Decode converts an engine element tree into a native Value tree using a
// shared default decoder. The engine calls this once per top-level message
// element; the implementation recurses internally.
func Decode(el Element) (Value, error) {
	return defaultDecoder.Decode(context.Background(), el)
}

// Decode converts an engine element tree into a native Value tree.
//
// Classification precedence is fixed: a null element decodes to the absent
// value regardless of its declared datatype; otherwise an array element
// decodes to an ordered list; otherwise a complex element decodes to an
// ordered record; otherwise the element is a scalar read at slot 0.
//
// The first error encountered aborts the entire decode: partially built
// records and lists are discarded and never returned. The context is used
// for observability only; decoding itself is synchronous and bounded and
// honors no cancellation.
func (d *Decoder) Decode(ctx context.Context, el Element) (Value, error) {
	start := time.Now()

	v, nodes, err := d.decode(el)
	d.observeDecode(ctx, el.Datatype(), time.Since(start), nodes, err)

	if err != nil {
		if d.log != nil {
			d.log.ErrorWithContext(ctx, "element decode failed", err, map[string]interface{}{
				"service":  d.cfg.ServiceName,
				"datatype": el.Datatype().String(),
				"element":  el.Name(),
			})
		}
		return Value{}, err
	}
	return v, nil
}

// decode is the recursive entry point. It returns the decoded value and the
// number of native values produced, for observability.
func (d *Decoder) decode(el Element) (Value, int, error) {
	switch {
	case el.IsNull():
		return Absent(), 1, nil
	case el.IsArray():
		return d.decodeArray(el)
	case el.IsComplexType():
		return d.decodeRecord(el)
	default:
		v, err := d.decodeScalar(el, 0)
		return v, 1, err
	}
}

// decodeScalar reads the single scalar value at the given slot of el,
// dispatching on the declared datatype.
func (d *Decoder) decodeScalar(el Element, index int) (Value, error) {
	dt := el.Datatype()

	switch dt {
	case TypeBool:
		b, err := el.BoolValue(index)
		if err != nil {
			return Value{}, accessError(stageScalar, dt, err)
		}
		return Bool(b), nil

	case TypeByte, TypeInt32, TypeInt64:
		// All three integer widths read through the 64-bit accessor; byte
		// values are not range-checked further by this layer.
		i, err := el.Int64Value(index)
		if err != nil {
			return Value{}, accessError(stageScalar, dt, err)
		}
		return Int64(i), nil

	case TypeFloat32, TypeFloat64:
		f, err := el.Float64Value(index)
		if err != nil {
			return Value{}, accessError(stageScalar, dt, err)
		}
		return Float64(f), nil

	case TypeChar, TypeString, TypeEnumeration:
		s, err := el.StringValue(index)
		if err != nil {
			return Value{}, accessError(stageScalar, dt, err)
		}
		return String(s), nil

	case TypeByteArray:
		raw, err := el.BytesValue(index)
		if err != nil {
			return Value{}, accessError(stageScalar, dt, err)
		}
		return Bytes(raw), nil

	case TypeDate, TypeTime, TypeDatetime:
		hp, err := el.DatetimeValue(index)
		if err != nil {
			return Value{}, accessError(stageDatetime, dt, err)
		}
		ts, err := hptime.Convert(hp)
		if err != nil {
			return Value{}, conversionError(dt, err)
		}
		return Timestamp(ts), nil

	default:
		// Sequence, choice and the unsupported wire tags must never reach
		// the scalar path; the upstream array/complex checks guarantee it.
		return Value{}, unsupportedError(dt)
	}
}

// decodeRecord decodes a complex element into an ordered record, one field
// per declared sub-element in schema order.
func (d *Decoder) decodeRecord(el Element) (Value, int, error) {
	n := el.NumElements()
	fields := make([]Field, 0, n)
	nodes := 1

	for i := 0; i < n; i++ {
		sub, err := el.ElementAt(i)
		if err != nil {
			return Value{}, nodes, accessError(stageRecord, el.Datatype(), err)
		}

		v, subNodes, err := d.decode(sub)
		nodes += subNodes
		if err != nil {
			return Value{}, nodes, err
		}

		fields = setField(fields, sub.Name(), v)
	}
	return Record(fields), nodes, nil
}

// setField inserts name→v, overwriting in place when a well-formed schema
// is violated and the name already exists. Last value wins.
func setField(fields []Field, name string, v Value) []Field {
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Value = v
			return fields
		}
	}
	return append(fields, Field{Name: name, Value: v})
}

// decodeArray decodes an array element into an ordered list of length
// NumValues. Whether the slots are complex is determined once from the
// schema type definition; homogeneity is guaranteed by the schema and not
// re-validated per slot.
func (d *Decoder) decodeArray(el Element) (Value, int, error) {
	n := el.NumValues()
	items := make([]Value, 0, n)
	nodes := 1

	td := el.TypeDefinition()
	complexItems := td != nil && td.IsComplexType()

	for i := 0; i < n; i++ {
		var (
			v        Value
			subNodes int
			err      error
		)
		if complexItems {
			var sub Element
			sub, err = el.ValueAsElement(i)
			if err != nil {
				return Value{}, nodes, accessError(stageArray, el.Datatype(), err)
			}
			v, subNodes, err = d.decode(sub)
		} else {
			v, err = d.decodeScalar(el, i)
			subNodes = 1
		}

		nodes += subNodes
		if err != nil {
			return Value{}, nodes, err
		}
		items = append(items, v)
	}
	return List(items), nodes, nil
}
