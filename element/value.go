package element

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/aalemi-dev/mdbridge/hptime"
)

// Kind discriminates the variants of a decoded Value.
type Kind uint8

// The variants a decoded Value can take.
const (
	// KindAbsent is the decode of a null element or an all-absent datetime.
	KindAbsent Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindBytes
	KindTimestamp
	// KindList is an ordered sequence decoded from an array element.
	KindList
	// KindRecord is an ordered name→value mapping decoded from a complex
	// element.
	KindRecord
)

var kindNames = [...]string{
	KindAbsent:    "absent",
	KindBool:      "bool",
	KindInt64:     "int64",
	KindFloat64:   "float64",
	KindString:    "string",
	KindBytes:     "bytes",
	KindTimestamp: "timestamp",
	KindList:      "list",
	KindRecord:    "record",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Field is one named entry of a record value. Field order is the schema's
// declaration order.
type Field struct {
	Name  string
	Value Value
}

// Value is the decoded form of an Element: a tagged union over the absent
// value, the native scalars, timestamps, ordered lists and ordered records.
//
// The zero Value is the absent value.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	raw    []byte
	ts     hptime.Timestamp
	list   []Value
	fields []Field
}

// Absent returns the absent value.
func Absent() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int64 returns a 64-bit signed integer value.
func Int64(i int64) Value { return Value{kind: KindInt64, i: i} }

// Float64 returns a double value.
func Float64(f float64) Value { return Value{kind: KindFloat64, f: f} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes returns a raw-bytes value. The slice is not copied; the decoder
// owns the slices it produces.
func Bytes(raw []byte) Value { return Value{kind: KindBytes, raw: raw} }

// Timestamp returns a timestamp value. An absent hptime.Timestamp yields
// the absent value, never a zero-valued timestamp.
func Timestamp(ts hptime.Timestamp) Value {
	if ts.IsAbsent() {
		return Absent()
	}
	return Value{kind: KindTimestamp, ts: ts}
}

// List returns an ordered sequence value.
func List(items []Value) Value { return Value{kind: KindList, list: items} }

// Record returns an ordered mapping value. The fields slice is taken as-is;
// callers are responsible for name uniqueness.
func Record(fields []Field) Value { return Value{kind: KindRecord, fields: fields} }

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is the absent value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsBool returns the boolean payload; ok is false for other kinds.
func (v Value) AsBool() (b bool, ok bool) { return v.b, v.kind == KindBool }

// AsInt64 returns the integer payload; ok is false for other kinds.
func (v Value) AsInt64() (i int64, ok bool) { return v.i, v.kind == KindInt64 }

// AsFloat64 returns the double payload; ok is false for other kinds.
func (v Value) AsFloat64() (f float64, ok bool) { return v.f, v.kind == KindFloat64 }

// AsString returns the text payload; ok is false for other kinds.
func (v Value) AsString() (s string, ok bool) { return v.s, v.kind == KindString }

// AsBytes returns the raw-bytes payload; ok is false for other kinds.
func (v Value) AsBytes() (raw []byte, ok bool) { return v.raw, v.kind == KindBytes }

// AsTimestamp returns the timestamp payload; ok is false for other kinds.
func (v Value) AsTimestamp() (ts hptime.Timestamp, ok bool) {
	return v.ts, v.kind == KindTimestamp
}

// Items returns the elements of a list value, nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Fields returns the ordered fields of a record value, nil for other kinds.
// When a well-formed schema is violated and a name repeats, the last decoded
// value wins but keeps the first occurrence's position.
func (v Value) Fields() []Field {
	if v.kind != KindRecord {
		return nil
	}
	return v.fields
}

// Field returns the value mapped to name in a record; ok is false when the
// value is not a record or the name is not present.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindRecord {
		return Value{}, false
	}
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of items in a list or fields in a record, zero for
// scalar kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindRecord:
		return len(v.fields)
	default:
		return 0
	}
}

// MarshalJSON renders the value as JSON. Record fields are written in their
// decoded (schema) order; absent values render as null, raw bytes as base64
// strings, and timestamps via their String form. Leaf values are encoded
// with sonic.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders the value for logs, falling back to the kind name if the
// JSON rendering fails.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return v.kind.String()
	}
	return string(data)
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindAbsent:
		buf.WriteString("null")
		return nil
	case KindBool:
		return appendLeaf(buf, v.b)
	case KindInt64:
		return appendLeaf(buf, v.i)
	case KindFloat64:
		return appendLeaf(buf, v.f)
	case KindString:
		return appendLeaf(buf, v.s)
	case KindBytes:
		return appendLeaf(buf, v.raw)
	case KindTimestamp:
		return appendLeaf(buf, v.ts.String())
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindRecord:
		buf.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendLeaf(buf, f.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := f.Value.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("element: cannot marshal %s value", v.kind)
	}
}

func appendLeaf(buf *bytes.Buffer, leaf interface{}) error {
	data, err := sonic.Marshal(leaf)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
