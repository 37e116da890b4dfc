package epoch

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// OutputFormat selects the layout of the rendered dates.
type OutputFormat int

const (
	RFC2822 OutputFormat = iota
	RFC3339
)

const rfc2822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"

func (f OutputFormat) String() string {
	if f == RFC3339 {
		return "RFC3339"
	}
	return "RFC2822"
}

func (f OutputFormat) layout() string {
	if f == RFC3339 {
		return time.RFC3339Nano
	}
	return rfc2822Layout
}

// ParseOutputFormat matches case-insensitively. RFC3399 is kept as an
// alias of RFC3339 for older scripts.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "RFC2822":
		return RFC2822, nil
	case "RFC3339", "RFC3399":
		return RFC3339, nil
	default:
		return RFC2822, fmt.Errorf("unknown output format: %s (expected RFC2822 or RFC3339)", s)
	}
}

// Styler decorates highlighted labels.
type Styler interface {
	Highlight(s string) string
}

type plain struct{}

func (plain) Highlight(s string) string { return s }

// Plain leaves labels untouched.
var Plain Styler = plain{}

// Render writes the four result lines for in.
func Render(w io.Writer, in Instant, loc *time.Location, f OutputFormat, style Styler) error {
	if style == nil {
		style = Plain
	}
	if loc == nil {
		loc = time.Local
	}

	t := in.Time()
	lines := []string{
		fmt.Sprintf("%s: %d", style.Highlight("Epoch timestamp"), in.Seconds),
		fmt.Sprintf("Timestamp in milliseconds: %d", in.UnixMilli()),
		fmt.Sprintf("%s: %s", style.Highlight("Date and time (GMT)"), t.Format(f.layout())),
		fmt.Sprintf("Date and time (your time zone): %s", t.In(loc).Format(f.layout())),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
