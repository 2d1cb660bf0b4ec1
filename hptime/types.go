package hptime

import "time"

// Part mask bits identifying which components of a HighPrecision value were
// actually transmitted by the engine. The numeric values mirror the engine's
// wire-level constants and must not be reordered.
const (
	// PartYear indicates the year component is present.
	PartYear uint8 = 0x1

	// PartMonth indicates the month component is present.
	PartMonth uint8 = 0x2

	// PartDay indicates the day component is present.
	PartDay uint8 = 0x4

	// PartOffset indicates the UTC offset component is present.
	PartOffset uint8 = 0x8

	// PartHours indicates the hours component is present.
	PartHours uint8 = 0x10

	// PartMinutes indicates the minutes component is present.
	PartMinutes uint8 = 0x20

	// PartSeconds indicates the seconds component is present.
	PartSeconds uint8 = 0x40

	// PartFracSeconds indicates the fractional-seconds components
	// (milliseconds and picoseconds) are present.
	PartFracSeconds uint8 = 0x80

	// PartsDate is the combined mask for a full calendar date.
	// A value "has a date" only when all three date parts are present.
	PartsDate = PartYear | PartMonth | PartDay

	// PartsTime is the combined mask for a whole-second time of day.
	PartsTime = PartHours | PartMinutes | PartSeconds

	// PartsTimeFracSeconds is the combined mask for any time-of-day
	// information. A value "has a time" when any of these bits is set.
	PartsTimeFracSeconds = PartsTime | PartFracSeconds
)

// HighPrecision mirrors the engine's high-precision datetime structure.
// Which fields are meaningful is governed entirely by Parts; the other
// fields are undefined when their part bit is clear.
type HighPrecision struct {
	// Parts is the presence bitmask. Zero means the value carries no
	// components at all.
	Parts uint8

	// Offset is the UTC offset in minutes, meaningful when PartOffset is set.
	Offset int

	Year  int
	Month int
	Day   int

	Hours   int
	Minutes int
	Seconds int

	// Milliseconds is the millisecond component of the sub-second count,
	// in the range [0, 999].
	Milliseconds int

	// Picoseconds is the remainder below one millisecond, in the range
	// [0, 999_999_999].
	Picoseconds int64
}

// HasDate reports whether all three calendar components are present.
func (hp HighPrecision) HasDate() bool {
	return hp.Parts&PartsDate == PartsDate
}

// HasTime reports whether any time-of-day component is present.
func (hp HighPrecision) HasTime() bool {
	return hp.Parts&PartsTimeFracSeconds != 0
}

// HasOffset reports whether the UTC offset component is present.
func (hp HighPrecision) HasOffset() bool {
	return hp.Parts&PartOffset != 0
}

// Microseconds returns the combined sub-second count at microsecond
// resolution: milliseconds*1000 plus picoseconds/1_000_000. Precision below
// one microsecond is discarded.
func (hp HighPrecision) Microseconds() int64 {
	return int64(hp.Milliseconds)*1000 + hp.Picoseconds/1_000_000
}

// Timestamp is the decoded form of a HighPrecision value: a native
// time.Time plus the original parts mask, so date-only and time-only values
// stay distinguishable from full datetimes.
//
// The zero Timestamp is the absent value.
type Timestamp struct {
	t     time.Time
	parts uint8
}

// IsAbsent reports whether the timestamp carries no components at all.
func (ts Timestamp) IsAbsent() bool {
	return ts.parts == 0
}

// Time returns the native calendar value. For date-only timestamps this is
// midnight UTC of the date; for time-only timestamps the date portion is
// the zero reference date (year 1). It is the zero time.Time when the
// timestamp is absent.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// Parts returns the presence bitmask the timestamp was decoded from.
func (ts Timestamp) Parts() uint8 {
	return ts.parts
}

// HasDate reports whether the timestamp carries a full calendar date.
func (ts Timestamp) HasDate() bool {
	return ts.parts&PartsDate == PartsDate
}

// HasTime reports whether the timestamp carries any time-of-day information.
func (ts Timestamp) HasTime() bool {
	return ts.parts&PartsTimeFracSeconds != 0
}

// Equal reports whether two timestamps carry the same parts and refer to
// the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.parts == other.parts && ts.t.Equal(other.t)
}

// String renders the timestamp for logs: RFC 3339 with sub-second digits
// for full datetimes, a plain date for date-only values, a plain clock
// reading for time-only values, and "<absent>" for the absent value.
func (ts Timestamp) String() string {
	switch {
	case ts.IsAbsent():
		return "<absent>"
	case ts.HasDate() && ts.HasTime():
		return ts.t.Format("2006-01-02T15:04:05.999999Z07:00")
	case ts.HasDate():
		return ts.t.Format("2006-01-02")
	default:
		return ts.t.Format("15:04:05.999999Z07:00")
	}
}
