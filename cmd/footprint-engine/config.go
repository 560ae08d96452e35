package main

import (
	"flag"
	"os"
	"time"
)

// Options holds the command-line settings for the footprint engine
// server. ListenAddr is the HTTP listen address, ConfigPath points to the
// optional YAML config, and Timeout bounds request handling and shutdown.
type Options struct {
	ListenAddr string
	ConfigPath string
	Timeout    time.Duration
	LogLevel   string
}

func parseOptions(args []string) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("footprint-engine", flag.ContinueOnError)
	fs.StringVar(&opts.ListenAddr, "listen", ":8080", "Address to listen on")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file (optional)")
	fs.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Request and shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// FOOTPRINT_LOG_LEVEL wins over the config file's log_level so
	// operators can raise verbosity without editing config.
	opts.LogLevel = os.Getenv("FOOTPRINT_LOG_LEVEL")

	return opts, nil
}
