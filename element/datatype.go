package element

import "fmt"

// DataType identifies the declared schema datatype of an Element. The
// numeric values mirror the engine's wire-level datatype constants and must
// not be reordered.
type DataType int

// The closed set of datatypes an Element can declare.
const (
	TypeBool DataType = iota + 1
	TypeChar
	TypeByte
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeByteArray
	TypeDate
	TypeTime
	TypeDecimal
	TypeDatetime
	TypeEnumeration
	TypeSequence
	TypeChoice
	TypeCorrelationID
)

var datatypeNames = map[DataType]string{
	TypeBool:          "BOOL",
	TypeChar:          "CHAR",
	TypeByte:          "BYTE",
	TypeInt32:         "INT32",
	TypeInt64:         "INT64",
	TypeFloat32:       "FLOAT32",
	TypeFloat64:       "FLOAT64",
	TypeString:        "STRING",
	TypeByteArray:     "BYTEARRAY",
	TypeDate:          "DATE",
	TypeTime:          "TIME",
	TypeDecimal:       "DECIMAL",
	TypeDatetime:      "DATETIME",
	TypeEnumeration:   "ENUMERATION",
	TypeSequence:      "SEQUENCE",
	TypeChoice:        "CHOICE",
	TypeCorrelationID: "CORRELATION_ID",
}

// String returns the engine's conventional upper-case name for the datatype.
func (dt DataType) String() string {
	if name, ok := datatypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("DATATYPE(%d)", int(dt))
}

// IsComplex reports whether the datatype is record-shaped (a sequence or a
// choice). Complex datatypes are never valid on the scalar decode path.
func (dt DataType) IsComplex() bool {
	return dt == TypeSequence || dt == TypeChoice
}
