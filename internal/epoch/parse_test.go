package epoch

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFormats(t *testing.T) {
	expected := Instant{Seconds: 2592000}

	tests := []struct {
		name   string
		input  string
		format string
	}{
		{"rfc2822", "31 Jan 1970 00:00:00 +0000", "RFC 2822"},
		{"rfc2822 weekday", "Sat, 31 Jan 1970 00:00:00 +0000", "RFC 2822"},
		{"rfc2822 gmt", "31 Jan 1970 00:00:00 GMT", "RFC 2822"},
		{"surrounding spaces", "  31 Jan 1970 00:00:00 GMT\n", "RFC 2822"},
		{"d-m-y", "31-01-1970 00:00:00 +0000", "D-M-Y"},
		{"m/d/y", "01/31/1970 00:00:00 +0000", "M/D/Y"},
		{"y/m/d", "1970/01/31 00:00:00 +0000", "Y/M/D"},
		{"y/m/d gmt", "1970/01/31 00:00:00 GMT", "Y/M/D"},
		{"positive offset", "31 Jan 1970 09:00:00 +0900", "RFC 2822"},
		{"rfc2822 short year", "Sat, 31 Jan 70 00:00:00 +0000", "RFC 2822"},
		{"rfc2822 no seconds", "31 Jan 1970 00:00 +0000", "RFC 2822"},
		{"rfc2822 lower weekday", "sat, 31 Jan 1970 00:00:00 +0000", "RFC 2822"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("ParseFormat returned error: %v", err)
			}
			if got != expected {
				t.Fatalf("unexpected instant\nexpected: %+v\n     got: %+v", expected, got)
			}
			if format != tt.format {
				t.Fatalf("unexpected format\nexpected: %s\n     got: %s", tt.format, format)
			}
		})
	}
}

func TestParseNegativeOffset(t *testing.T) {
	for _, input := range []string{"31 Jan 1970 00:00:00 -0500", "31-01-1970 00:00:00 -0500"} {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		if got.Seconds != 2592000+5*3600 {
			t.Fatalf("Parse(%q): unexpected seconds %d", input, got.Seconds)
		}
	}
}

func TestParseMissingTimezone(t *testing.T) {
	_, err := Parse("  31 Jan 1970 00:00:00 ")
	if !errors.Is(err, ErrMissingTimezone) {
		t.Fatalf("expected ErrMissingTimezone, got %v", err)
	}
	if !IsKind(err, KindMissingTimezone) {
		t.Fatalf("expected missing timezone kind, got %v", err)
	}

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Input != "31 Jan 1970 00:00:00" {
		t.Fatalf("expected normalized input in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "31 Jan 1970 00:00:00") {
		t.Fatalf("error message lacks input: %v", err)
	}
}

func TestParseUnrecognizedFormat(t *testing.T) {
	tests := []string{
		"garbage +0000",
		"garbage GMT",
		// Four trailing digits satisfy the zone check even without a sign.
		"31 Jan 1970 00:00:00 1234",
		"1970-01-31T00:00:00+0000",
		// Trailing text after the zone must not be dropped.
		"31 Jan 1970 00:00:00 GMT+0100",
		"31 Jan 1970 00:00:00 +0000 foo 1234",
		"31-01-1970 00:00:00 +0000 +0100",
		// 31 Jan 1970 was a Saturday.
		"Fri, 31 Jan 1970 00:00:00 +0000",
	}

	for _, input := range tests {
		_, err := Parse(input)
		if !errors.Is(err, ErrUnrecognizedFormat) {
			t.Fatalf("Parse(%q): expected ErrUnrecognizedFormat, got %v", input, err)
		}
		if IsKind(err, KindMissingTimezone) {
			t.Fatalf("Parse(%q): unexpected kind", input)
		}
		if !strings.Contains(err.Error(), Normalize(input)) {
			t.Fatalf("Parse(%q): error message lacks input: %v", input, err)
		}
	}
}

func TestFormatsOrder(t *testing.T) {
	var names []string
	for _, f := range Formats() {
		names = append(names, f.Name)
	}

	if got := strings.Join(names, ","); got != "RFC 2822,D-M-Y,M/D/Y,Y/M/D" {
		t.Fatalf("unexpected format order: %s", got)
	}
}
