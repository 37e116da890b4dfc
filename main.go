package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	flags "github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/haccht/epochconv/internal/epoch"
	"github.com/haccht/epochconv/internal/logging"
)

type options struct {
	Datetime  string `short:"d" long:"datetime" description:"Human date to convert. Strip 'GMT' to convert to local"`
	OutputFmt string `short:"o" long:"output-fmt" description:"Date format of the output (RFC2822, RFC3339)" default:"RFC2822"`
	TimeZone  string `short:"z" long:"time-zone" env:"EPOCHCONV_TIME_ZONE" description:"TimeZone to display your local time in" default:"Local"`
	NoColor   bool   `long:"no-color" description:"Disable colored output"`
	Verbose   bool   `short:"v" long:"verbose" description:"Write debug logs to stderr"`
	Help      bool   `short:"h" long:"help" description:"Show this help message"`
}

var errHelp = errors.New("help requested")

func parseOpts(params []string, stdout io.Writer) (*options, []string, error) {
	var opts options

	fp := flags.NewParser(&opts, flags.Default&^flags.HelpFlag&^flags.PrintErrors)
	fp.Name = "epochconv"
	fp.Usage = "[Options] [epoch]"

	args, err := fp.ParseArgs(params)
	if err != nil {
		return nil, nil, err
	}

	if opts.Help {
		var message bytes.Buffer

		fp.WriteHelp(&message)
		fmt.Fprint(&message, `
Convert an epoch timestamp (seconds, milliseconds, microseconds or
nanoseconds are guessed from its magnitude) or a human date. Without
arguments the current time is shown. Use "-" to read values from stdin.

Input Formats:
`)
		for _, f := range epoch.Formats() {
			fmt.Fprintf(&message, "    %-9s %q\n", f.Name, f.Example)
		}
		fmt.Fprint(&message, `
TimeZone Formats:
    GMT         "31 Jan 1970 00:00:00 GMT"
    Offset      "31 Jan 1970 01:00:00 +0100"`)

		fmt.Fprintln(stdout, message.String())
		return nil, nil, errHelp
	}

	if len(args) > 1 {
		return nil, nil, fmt.Errorf("too many arguments: %s", strings.Join(args, " "))
	}
	if len(args) == 1 && opts.Datetime != "" {
		return nil, nil, fmt.Errorf("epoch %s cannot be used with --datetime", args[0])
	}
	return &opts, args, nil
}

type termStyler struct {
	out *termenv.Output
}

func (s termStyler) Highlight(text string) string {
	return s.out.String(text).Foreground(termenv.ANSIGreen).Bold().String()
}

func newStyler(w io.Writer, noColor bool) epoch.Styler {
	if noColor {
		return epoch.Plain
	}
	out := termenv.NewOutput(w)
	if out.EnvNoColor() || out.Profile == termenv.Ascii {
		return epoch.Plain
	}
	return termStyler{out: out}
}

type converter struct {
	now    time.Time
	loc    *time.Location
	format epoch.OutputFormat
	style  epoch.Styler
	logger *zap.Logger
	stdout io.Writer
}

func (c *converter) convertEpoch(text string) error {
	raw, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid epoch: %s: %w", text, err)
	}

	in, unit := epoch.Disambiguate(raw, c.now.Unix())
	c.logger.Debug("epoch disambiguated",
		zap.Int64("raw", raw),
		zap.Int64("now", c.now.Unix()),
		zap.Stringer("unit", unit),
	)

	fmt.Fprintln(c.stdout, unit.Notice())
	return epoch.Render(c.stdout, in, c.loc, c.format, c.style)
}

func (c *converter) convertDatetime(text string) error {
	in, name, err := epoch.ParseFormat(text)
	if err != nil {
		return err
	}
	c.logger.Debug("datetime parsed", zap.String("input", text), zap.String("format", name))

	return epoch.Render(c.stdout, in, c.loc, c.format, c.style)
}

func (c *converter) convertNow() error {
	c.logger.Debug("no input, using current time", zap.Time("now", c.now))
	return epoch.Render(c.stdout, epoch.FromTime(c.now), c.loc, c.format, c.style)
}

// convertStream converts one value per line. Lines that parse as integers
// are epochs, anything else is a datetime.
func (c *converter) convertStream(r io.Reader, stderr io.Writer) error {
	var total, failed int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if total > 0 {
			fmt.Fprintln(c.stdout)
		}
		total++

		var err error
		if _, perr := strconv.ParseInt(line, 10, 64); perr == nil {
			err = c.convertEpoch(line)
		} else {
			err = c.convertDatetime(line)
		}
		if err != nil {
			failed++
			fmt.Fprintln(stderr, err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be converted", failed, total)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(params []string, stdin io.Reader, stdout, stderr io.Writer, now time.Time) error {
	opts, args, err := parseOpts(params, stdout)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, opts.Verbose)
	defer logger.Sync()

	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return err
	}

	format, err := epoch.ParseOutputFormat(opts.OutputFmt)
	if err != nil {
		return err
	}
	logger.Debug("options resolved",
		zap.String("location", loc.String()),
		zap.Stringer("output_fmt", format),
	)

	c := &converter{
		now:    now,
		loc:    loc,
		format: format,
		style:  newStyler(stdout, opts.NoColor),
		logger: logger,
		stdout: stdout,
	}

	switch {
	case opts.Datetime != "":
		return c.convertDatetime(opts.Datetime)
	case len(args) == 1 && args[0] == "-":
		if isTerminal(stdin) {
			return fmt.Errorf("no input on stdin")
		}
		return c.convertStream(stdin, stderr)
	case len(args) == 1:
		return c.convertEpoch(args[0])
	default:
		return c.convertNow()
	}
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, time.Now())
	if errors.Is(err, errHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
