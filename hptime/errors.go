package hptime

import (
	"errors"
	"fmt"
)

// ErrInvalidComponents is returned when a HighPrecision value declares a
// component that is outside its legal range, or when its parts mask names
// no decodable fields at all. These indicate a schema or engine contract
// violation and are never silently defaulted.
var ErrInvalidComponents = errors.New("hptime: invalid datetime components")

// componentError wraps ErrInvalidComponents with the offending field.
func componentError(field string, value int64) error {
	return fmt.Errorf("%w: %s out of range (%d)", ErrInvalidComponents, field, value)
}
