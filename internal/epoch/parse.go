package epoch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrMissingTimezone    = errors.New("missing timezone")
	ErrUnrecognizedFormat = errors.New("unrecognized date format")
)

// ErrorKind classifies datetime parse failures.
type ErrorKind string

const (
	KindMissingTimezone    ErrorKind = "missing_timezone"
	KindUnrecognizedFormat ErrorKind = "unrecognized_format"
)

// ParseError reports a datetime that could not be converted. Input holds
// the normalized text, not the raw argument.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindMissingTimezone:
		return fmt.Sprintf("could not parse input %s: %v; provide a valid timezone offset or GMT as suffix", e.Input, ErrMissingTimezone)
	default:
		return fmt.Sprintf("could not parse input %s: %v", e.Input, ErrUnrecognizedFormat)
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindMissingTimezone:
		return ErrMissingTimezone
	case KindUnrecognizedFormat:
		return ErrUnrecognizedFormat
	}
	return nil
}

func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// Any four trailing digits count as a zone, whatever the sign before them.
var zoneSuffix = regexp.MustCompile(`\d{4}$`)

type inputFormat struct {
	Name    string
	Example string
	parse   func(string) (time.Time, error)
}

func layout(l string) func(string) (time.Time, error) {
	return func(s string) (time.Time, error) {
		return time.Parse(l, s)
	}
}

var rfc2822Layouts = buildRFC2822Layouts()

func buildRFC2822Layouts() []string {
	var layouts []string
	for _, dow := range []string{"", "Mon, "} {
		for _, year := range []string{"2006", "06"} {
			for _, sec := range []string{":05", ""} {
				layouts = append(layouts, dow+"2 Jan "+year+" 15:04"+sec+" -0700")
			}
		}
	}
	return layouts
}

var errWeekday = errors.New("weekday does not match date")

// parseRFC2822 rejects trailing text and a day of week that disagrees
// with the date it prefixes.
func parseRFC2822(s string) (time.Time, error) {
	var lastErr error
	for _, l := range rfc2822Layouts {
		t, err := time.Parse(l, s)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.HasPrefix(l, "Mon") && !strings.EqualFold(s[:3], t.Weekday().String()[:3]) {
			return time.Time{}, errWeekday
		}
		return t, nil
	}
	return time.Time{}, lastErr
}

// formats are tried in order; the first one that parses wins.
var formats = []inputFormat{
	{"RFC 2822", "31 Jan 1970 00:00:00 +0000", parseRFC2822},
	{"D-M-Y", "31-01-1970 00:00:00 +0000", layout("2-1-2006 15:04:05 -0700")},
	{"M/D/Y", "01/31/1970 00:00:00 +0000", layout("1/2/2006 15:04:05 -0700")},
	{"Y/M/D", "1970/01/31 00:00:00 +0000", layout("2006/1/2 15:04:05 -0700")},
}

// Format describes one accepted input format.
type Format struct {
	Name    string
	Example string
}

// Formats lists the accepted input formats in the order they are tried.
func Formats() []Format {
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		out = append(out, Format{Name: f.Name, Example: f.Example})
	}
	return out
}

// Normalize trims s and rewrites GMT as a +0000 offset.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "GMT", "+0000")
}

// Parse converts a human datetime carrying an explicit zone into an Instant.
func Parse(s string) (Instant, error) {
	in, _, err := ParseFormat(s)
	return in, err
}

// ParseFormat is Parse that also reports the name of the matched format.
func ParseFormat(s string) (Instant, string, error) {
	s = Normalize(s)
	if !zoneSuffix.MatchString(s) {
		return Instant{}, "", &ParseError{Kind: KindMissingTimezone, Input: s}
	}

	for _, f := range formats {
		t, err := f.parse(s)
		if err != nil {
			continue
		}
		return FromTime(t.UTC()), f.Name, nil
	}
	return Instant{}, "", &ParseError{Kind: KindUnrecognizedFormat, Input: s}
}
