// Package epoch converts between Unix epoch values and calendar dates.
package epoch

import "time"

const nanosPerSecond = 1_000_000_000

// Instant is an absolute point in time as seconds since the Unix epoch
// plus a non-negative sub-second remainder.
type Instant struct {
	Seconds int64
	Nanos   uint32
}

// NewInstant builds an Instant, borrowing from sec when nsec is negative
// or carrying when it overflows a second.
func NewInstant(sec, nsec int64) Instant {
	if nsec < 0 || nsec >= nanosPerSecond {
		sec += nsec / nanosPerSecond
		nsec %= nanosPerSecond
		if nsec < 0 {
			sec--
			nsec += nanosPerSecond
		}
	}
	return Instant{Seconds: sec, Nanos: uint32(nsec)}
}

// FromTime converts t to an Instant, dropping its location.
func FromTime(t time.Time) Instant {
	return Instant{Seconds: t.Unix(), Nanos: uint32(t.Nanosecond())}
}

// Time returns the instant in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.Seconds, int64(i.Nanos)).UTC()
}

// UnixMilli truncates the remainder to whole milliseconds.
func (i Instant) UnixMilli() int64 {
	return i.Seconds*1000 + int64(i.Nanos/1_000_000)
}
