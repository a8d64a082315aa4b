// Package main is the entry point for the lineview pager.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/lineview/internal/app"
	"github.com/dshills/lineview/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if len(opts.Files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no file to view\n\n")
		flag.Usage()
		return 1
	}

	// The pager draws straight to the terminal; refuse to start when
	// stdout is a pipe or a file.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: standard output is not a terminal\n")
		return 1
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	screen, err := backend.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := application.SetBackend(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		// A user-requested quit is the normal exit path.
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var wrap bool
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to preferences file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to preferences file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&wrap, "wrap", false, "Soft-wrap long lines")
	flag.BoolVar(&wrap, "w", false, "Soft-wrap long lines (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Lineview - terminal file pager\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lineview [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  j/k, arrows         Move one line\n")
		fmt.Fprintf(os.Stderr, "  space/b, PgDn/PgUp  Move one page\n")
		fmt.Fprintf(os.Stderr, "  d/u                 Move half a page\n")
		fmt.Fprintf(os.Stderr, "  g/G                 Jump to start/end\n")
		fmt.Fprintf(os.Stderr, "  z                   Center the view\n")
		fmt.Fprintf(os.Stderr, "  q, Esc              Quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Lineview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
			// Valid
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	// The wrap flags only override the preferences file when given.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "wrap" || f.Name == "w" {
			opts.Wrap = &wrap
		}
	})

	// Remaining arguments are files to view
	opts.Files = flag.Args()

	return opts
}
