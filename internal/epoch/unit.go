package epoch

import "math"

// Unit is the magnitude an epoch value is assumed to be expressed in.
type Unit int

const (
	Seconds Unit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	case Nanoseconds:
		return "nanoseconds"
	default:
		return "unknown"
	}
}

// Notice is the advisory line printed when a unit has been guessed.
func (u Unit) Notice() string {
	return "Assuming that timestamp is in " + u.String() + "."
}

const (
	threshold       = 10
	milliMultiplier = 1_000
	microMultiplier = 1_000_000
	nanoMultiplier  = 1_000_000_000
)

// Disambiguate guesses the unit of raw by comparing it against now
// scaled to each unit, and normalizes it to an Instant.
//
// Band bounds saturate at the int64 limits instead of wrapping, so an
// extreme now collapses every input into the first or last band.
func Disambiguate(raw, now int64) (Instant, Unit) {
	switch {
	case raw <= mulSat(now, threshold):
		return Instant{Seconds: raw}, Seconds
	case raw <= mulSat(mulSat(now, milliMultiplier), threshold):
		return NewInstant(raw/milliMultiplier, microMultiplier*(raw%milliMultiplier)), Milliseconds
	case raw <= mulSat(mulSat(now, microMultiplier), threshold):
		return NewInstant(raw/microMultiplier, milliMultiplier*(raw%microMultiplier)), Microseconds
	default:
		return NewInstant(raw/nanoMultiplier, raw%nanoMultiplier), Nanoseconds
	}
}

// mulSat multiplies a by a positive factor, clamping to the int64 range.
func mulSat(a, factor int64) int64 {
	if a > math.MaxInt64/factor {
		return math.MaxInt64
	}
	if a < math.MinInt64/factor {
		return math.MinInt64
	}
	return a * factor
}
