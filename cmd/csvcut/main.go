package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arnodel/csvcut"
	"github.com/arnodel/csvcut/encoding/csv"
	"github.com/arnodel/csvcut/internal/config"
	"github.com/arnodel/csvcut/internal/format"
	"github.com/arnodel/csvcut/selection"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Exit statuses
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the end of run).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
			os.Exit(exitFailure)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaults, err := config.Load()
	if err != nil {
		return usageError(stderr, "%s", err)
	}

	var (
		target    string
		delimiter = ","
		header    bool
		jsonOut   bool
		colorMode = config.ColorAuto
		trace     bool
		verbose   bool
	)
	if defaults.Delimiter != "" {
		delimiter = defaults.Delimiter
	}
	if defaults.Header != nil {
		header = *defaults.Header
	}
	if defaults.JSON != nil {
		jsonOut = *defaults.JSON
	}
	if defaults.Color != "" {
		colorMode = defaults.Color
	}

	flags := flag.NewFlagSet("csvcut", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { printUsage(stderr) }

	flags.StringVar(&target, "f", "", "columns to select (short for -target)")
	flags.StringVar(&target, "target", "", "columns to select, e.g. 1,3-5,8-")
	flags.StringVar(&delimiter, "d", delimiter, "field delimiter (short for -delimiter)")
	flags.StringVar(&delimiter, "delimiter", delimiter, "field delimiter character")
	flags.BoolVar(&header, "header", header, "the first line is a header, do not output it")
	flags.BoolVar(&jsonOut, "j", jsonOut, "output JSON (short for -json)")
	flags.BoolVar(&jsonOut, "json", jsonOut, "output JSON arrays, or objects with -header")
	flags.StringVar(&colorMode, "color", colorMode, "colorize JSON output: auto, always, never")
	flags.BoolVar(&trace, "trace", false, "log each row and its selected fields to stderr")
	flags.BoolVar(&verbose, "verbose", false, "print a summary to stderr at the end")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 0 {
		return usageError(stderr, "unexpected argument: %q", flags.Arg(0))
	}
	if target == "" {
		return usageError(stderr, "missing column selection, use -f LIST")
	}

	// Build the config
	spec, err := selection.Parse(target)
	if err != nil {
		return usageError(stderr, "%s", err)
	}
	delim, err := csvcut.ParseDelimiter(delimiter)
	if err != nil {
		return usageError(stderr, "%s", err)
	}
	cfg := csvcut.Config{
		Delimiter: delim,
		Selection: spec,
		Header:    header,
		JSON:      jsonOut,
	}

	// Handle color mode
	terminal := isTerminal(stdout)
	var colorizer *format.Colorizer
	switch colorMode {
	case config.ColorAlways:
		colorizer = &defaultColorizer
	case config.ColorNever:
	case config.ColorAuto:
		if terminal {
			colorizer = &defaultColorizer
		}
	default:
		return usageError(stderr, "%s", config.ValidateColor(colorMode))
	}
	if !cfg.JSON {
		colorizer = nil
	}

	// Set up stdout for handling colors
	if f, ok := stdout.(*os.File); ok && colorizer != nil {
		stdout = colorable.NewColorable(f)
	}

	// Write the output to stdout
	out := bufio.NewWriter(stdout)
	printer := &format.DefaultPrinter{Writer: out}

	// If we are writing to a terminal, flush after each line so user gets feedback early.
	if terminal {
		printer.Flusher = out
	}

	cutter, err := csvcut.NewCutter(cfg, csvcut.NewEncoder(cfg, printer, colorizer))
	if err != nil {
		return usageError(stderr, "%s", err)
	}
	if trace {
		cutter.Trace = log.New(stderr, "csvcut: ", 0)
	}

	reader := csv.NewReader(stdin)
	reader.Delimiter = cfg.Delimiter

	err = cutter.Run(reader)
	if err == nil {
		err = out.Flush()
	}
	if verbose {
		printStats(stderr, cutter.Stats())
	}
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return exitOK
		}
		fmt.Fprintf(stderr, "csvcut: error at line %d: %s\n", reader.Line(), err)
		return exitFailure
	}
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func usageError(stderr io.Writer, msg string, args ...interface{}) int {
	fmt.Fprintf(stderr, "csvcut: "+msg+"\n", args...)
	fmt.Fprintln(stderr, "Run 'csvcut -help' for usage.")
	return exitUsage
}

func printStats(w io.Writer, stats csvcut.Stats) {
	fmt.Fprintf(w, "csvcut: %d lines read, %d rows output", stats.Lines, stats.Rows)
	if stats.Header != nil {
		fmt.Fprintf(w, ", header %v", stats.Header)
	}
	fmt.Fprintln(w)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow     = []byte("\033[33m")
	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = format.Colorizer{
	KeyColorCode:    BrightBlue,
	StringColorCode: Yellow,
	ResetCode:       Reset,
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `csvcut - select columns from delimited text

USAGE:
  csvcut -f LIST [options] < input.csv

DESCRIPTION:
  csvcut reads lines of delimited text from stdin and outputs the selected
  columns of each line, as text or as JSON.

  A field starting with a double quote extends to the next double quote, so
  it can contain the delimiter.  The quotes are not output.

OPTIONS:
  -f, -target LIST      Columns to select (required)
  -d, -delimiter CHAR   Field delimiter (default: ',')
  -header               The first line is a header: it is not output, and
                        with -json it gives the keys of the output objects
  -j, -json             Output a JSON array for each line, or a JSON object
                        with -header
  -color MODE           Colorize JSON output (default: auto)
                        Modes: auto, always, never
  -trace                Log each line and its selected fields to stderr
  -verbose              Print a summary to stderr at the end

SELECTING COLUMNS:
  LIST is a comma separated list of items.  Columns are numbered from 1.

  N       column N
  N-      columns N to the last one
  -M      columns 1 to M
  N-M     columns N to M

  Items are applied in order, so '3,1' outputs column 3 before column 1 and
  overlapping items output columns more than once.  Columns beyond the end
  of a line are ignored.

EXAMPLES:
  Single:
    $ (echo 'a,b,c';echo '2,3,4';echo '11,12,13') | csvcut -f 1
    a
    2
    11

  Left limit:
    $ (echo 'a,b,c';echo '2,3,4';echo '11,12,13') | csvcut -f 2-
    b,c
    3,4
    12,13

  Right limit:
    $ (echo 'a,b,c';echo '2,3,4';echo '11,12,13') | csvcut -f -2
    a,b
    2,3
    11,12

  Interval:
    $ (echo 'a,b,c,d';echo '1,2,3,4';echo '11,12,13,14') | csvcut -f 2-3
    b,c
    2,3
    12,13

  Single and left limit, ignoring the header:
    $ (echo 'a,b,c,d';echo '1,2,3,4';echo '11,12,13,14') | csvcut -f 1,3- -header
    1,3,4
    11,13,14

  JSON:
    $ (echo 'a,b,c';echo '2,3,4';echo '11,12,13') | csvcut -f 2 -json
    ["b"]
    ["3"]
    ["12"]
    $ (echo 'a,b,c';echo '2,3,4';echo '11,12,13') | csvcut -f 2 -json -header
    {"b":"3"}
    {"b":"12"}

ENVIRONMENT:
  CSVCUT_CONFIG   Path of a YAML file giving defaults for delimiter, header,
                  json and color, e.g.

                    delimiter: ";"
                    header: true
`)
}
