// Package main is the entry point for the termprobe inspector.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/extended"

	"github.com/dshills/termprobe"
	"github.com/dshills/termprobe/internal/report"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	timeout  time.Duration
	jsonOut  bool
	noTheme  bool
	debug    bool
	logLevel string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	detectOpts := termprobe.Options{Timeout: opts.timeout, LogLevel: opts.logLevel}
	if opts.debug {
		detectOpts.Debug = true
	}
	if opts.debug || opts.logLevel != "" {
		detectOpts.LogOutput = os.Stderr
	}

	info := termprobe.Detect(detectOpts)

	r := report.Report{Info: info, Term: os.Getenv("TERM")}
	if cols, rows, err := termprobe.WindowSize(); err == nil {
		r.Columns, r.Rows = cols, rows
	}
	if r.Term != "" {
		// What the terminal claims via the environment, for comparison
		// with what probing found.
		if ti, err := terminfo.LookupTerminfo(r.Term); err == nil {
			r.TermColors = ti.Colors
		}
	}
	if !opts.noTheme {
		if bg, err := termprobe.QueryBackground(opts.timeout); err == nil {
			r.Background = &bg
		}
	}

	if opts.jsonOut {
		doc, err := report.JSON(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(doc)
		return 0
	}

	report.Text(os.Stdout, r)
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.DurationVar(&opts.timeout, "timeout", 0, "Reply deadline per probe (default depends on DISPLAY)")
	flag.BoolVar(&opts.jsonOut, "json", false, "Write the report as JSON")
	flag.BoolVar(&opts.noTheme, "no-theme", false, "Skip the background color query")
	flag.BoolVar(&opts.debug, "debug", false, "Log every probe to stderr")
	flag.BoolVar(&opts.debug, "d", false, "Log every probe to stderr (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log to stderr at the named level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Termprobe - terminal emulator detection\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termprobe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termprobe                   Report on the current terminal\n")
		fmt.Fprintf(os.Stderr, "  termprobe -json             Machine-readable report\n")
		fmt.Fprintf(os.Stderr, "  termprobe -timeout 250ms    Stretch the deadline for slow links\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Termprobe %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
