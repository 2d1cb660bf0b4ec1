package hptime

import (
	"fmt"
	"time"
)

// Convert turns a HighPrecision value into a Timestamp.
//
// A value whose parts mask is zero converts to the absent Timestamp and is
// not an error. A value whose components are out of range, or whose parts
// mask is non-zero yet names neither a date nor a time, fails with
// ErrInvalidComponents.
//
// The conversion is pure: it mutates no shared state beyond the
// lock-guarded offset-location cache (see OffsetLocation).
func Convert(hp HighPrecision) (Timestamp, error) {
	if hp.Parts == 0 {
		return Timestamp{}, nil
	}

	if err := validate(hp); err != nil {
		return Timestamp{}, err
	}

	hasDate := hp.HasDate()
	hasTime := hp.HasTime()

	switch {
	case hasDate && hasTime:
		loc := time.UTC
		if hp.HasOffset() {
			loc = OffsetLocation(hp.Offset)
		}
		t := time.Date(hp.Year, time.Month(hp.Month), hp.Day,
			hp.Hours, hp.Minutes, hp.Seconds, nanos(hp), loc)
		return Timestamp{t: t, parts: hp.Parts}, nil

	case hasDate:
		// An offset without a time of day is not informative; drop it.
		t := time.Date(hp.Year, time.Month(hp.Month), hp.Day, 0, 0, 0, 0, time.UTC)
		return Timestamp{t: t, parts: hp.Parts &^ PartOffset}, nil

	case hasTime:
		loc := time.UTC
		if hp.HasOffset() {
			loc = OffsetLocation(hp.Offset)
		}
		t := time.Date(1, time.January, 1,
			hp.Hours, hp.Minutes, hp.Seconds, nanos(hp), loc)
		return Timestamp{t: t, parts: hp.Parts}, nil

	default:
		return Timestamp{}, fmt.Errorf("%w: parts mask 0x%02x names no date or time fields",
			ErrInvalidComponents, hp.Parts)
	}
}

// nanos converts the combined microsecond count into time.Time nanoseconds.
func nanos(hp HighPrecision) int {
	return int(hp.Microseconds() * 1000)
}

// validate range-checks every component whose part bit is set.
func validate(hp HighPrecision) error {
	if hp.HasDate() {
		if hp.Year < 1 || hp.Year > 9999 {
			return componentError("year", int64(hp.Year))
		}
		if hp.Month < 1 || hp.Month > 12 {
			return componentError("month", int64(hp.Month))
		}
		if hp.Day < 1 || hp.Day > 31 {
			return componentError("day", int64(hp.Day))
		}
	}
	if hp.HasTime() {
		if hp.Hours < 0 || hp.Hours > 23 {
			return componentError("hours", int64(hp.Hours))
		}
		if hp.Minutes < 0 || hp.Minutes > 59 {
			return componentError("minutes", int64(hp.Minutes))
		}
		if hp.Seconds < 0 || hp.Seconds > 59 {
			return componentError("seconds", int64(hp.Seconds))
		}
	}
	if hp.Parts&PartFracSeconds != 0 {
		if hp.Milliseconds < 0 || hp.Milliseconds > 999 {
			return componentError("milliseconds", int64(hp.Milliseconds))
		}
		if hp.Picoseconds < 0 || hp.Picoseconds > 999_999_999 {
			return componentError("picoseconds", hp.Picoseconds)
		}
	}
	if hp.HasOffset() {
		// Offsets beyond a day are nonsensical regardless of what the
		// engine transmitted.
		if hp.Offset < -24*60 || hp.Offset > 24*60 {
			return componentError("offset", int64(hp.Offset))
		}
	}
	return nil
}
