package hptime

import (
	"fmt"
	"sync"
	"time"
)

// locations caches one *time.Location per distinct UTC offset. Lookups and
// inserts are serialized by locMu: the cache must never be populated through
// an unguarded lazily-checked global, or two threads could both observe
// "not yet initialized" and race the insert.
var (
	locMu     sync.Mutex
	locations = make(map[int]*time.Location)
)

// OffsetLocation returns a fixed-offset *time.Location for the given UTC
// offset in minutes. The zero offset returns time.UTC. Locations are cached
// process-wide with an init-once/no-teardown lifecycle, so repeated calls
// with the same offset return the same *time.Location.
//
// Safe for concurrent use from any thread.
func OffsetLocation(offsetMinutes int) *time.Location {
	if offsetMinutes == 0 {
		return time.UTC
	}

	locMu.Lock()
	defer locMu.Unlock()

	if loc, ok := locations[offsetMinutes]; ok {
		return loc
	}

	loc := time.FixedZone(offsetName(offsetMinutes), offsetMinutes*60)
	locations[offsetMinutes] = loc
	return loc
}

// offsetName renders an offset in minutes as "UTC+05:30" / "UTC-04:00".
func offsetName(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}
