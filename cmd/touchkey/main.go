// Package main is the entry point for the touchkey terminal demo.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/touchkey/internal/demo"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 1
	}

	app, err := demo.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		app.Shutdown()
	}()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type pathList []string

func (p *pathList) String() string { return fmt.Sprint(*p) }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func parseFlags() (demo.Options, bool) {
	var opts demo.Options
	var layouts, scripts pathList
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to settings file (TOML or YAML)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to settings file (shorthand)")
	flag.Var(&layouts, "layout", "JSON input-set file to register (repeatable)")
	flag.Var(&scripts, "script", "Lua script registering custom actions (repeatable)")
	flag.StringVar(&opts.Locale, "locale", "", "Active layout locale")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Touchkey - soft keyboard input core demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: touchkey [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  touchkey                          Run with built-in layouts\n")
		fmt.Fprintf(os.Stderr, "  touchkey -c settings.toml         Run with custom settings\n")
		fmt.Fprintf(os.Stderr, "  touchkey -layout qwertz.json      Register an extra layout\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Touchkey %s\n", version)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.LogLevel)
		return opts, false
	}

	opts.LayoutPaths = layouts
	opts.ScriptPaths = scripts
	return opts, true
}
