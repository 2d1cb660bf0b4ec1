// Package hptime converts the engine's high-precision, component-based
// datetime representation into native time.Time values.
//
// The engine describes a point in time as a bag of optional components: a
// parts bitmask saying which fields were actually transmitted, calendar
// fields (year, month, day), time-of-day fields (hours, minutes, seconds),
// a split sub-second count (milliseconds plus a picosecond remainder), and
// an optional UTC offset in minutes. A value whose parts mask is zero
// carries no information at all and converts to an absent Timestamp, not to
// a zero-valued point in time.
//
// Go has a single calendar type, so the three shapes a high-precision value
// can take are all expressed as time.Time:
//
//   - date + time parts: the full instant, in a fixed-offset zone when the
//     offset part is present, otherwise UTC
//   - date parts only: midnight UTC of that date (the offset is dropped;
//     an offset without a time of day is not informative)
//   - time parts only: the time of day on the zero reference date (year 1)
//
// The original parts mask is retained on the returned Timestamp so callers
// can still tell a date-only value from a datetime that happens to fall on
// midnight.
//
// Sub-second precision is microseconds: milliseconds*1000 plus
// picoseconds/1_000_000. Sub-microsecond precision carried by the engine is
// discarded, matching the precision contract of the rest of the binding.
package hptime
