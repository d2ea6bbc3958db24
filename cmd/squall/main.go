// Package main is the entry point for the Squall editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/squall/internal/app"
	"github.com/dshills/squall/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", defaultConfigPath(), "path to the configuration file")
	logPath := flag.String("log", "", "write a debug log to this file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("squall %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	var file string
	if flag.NArg() > 0 {
		file = flag.Arg(0)
	}

	application, err := app.New(cfg, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			defer f.Close()
			application.SetLogger(app.NewLogger(f, app.LogLevelDebug))
		}
	}

	if file != "" {
		if err := application.Editor().LoadFile(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Live-reload the configuration while the editor runs. Reload
	// failures keep the previous configuration.
	if w, err := config.NewWatcher(*configPath); err == nil {
		defer w.Close()
		w.OnChange(application.QueueConfig)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "squall.toml"
	}
	return filepath.Join(dir, "squall", "squall.toml")
}
