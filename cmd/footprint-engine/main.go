package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/footprint-engine/internal/config"
	"github.com/rshade/footprint-engine/internal/engine"
)

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		bootLogger := config.NewLogger("")
		bootLogger.Fatal().Err(err).Msg("Loading config failed")
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := config.NewLogger(level)

	eng := engine.New(cfg.Policy).WithLogger(logger)
	_, mux := newServer(eng, logger, prometheus.NewRegistry())

	srv := &http.Server{
		Addr:         opts.ListenAddr,
		Handler:      mux,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().
		Str("addr", opts.ListenAddr).
		Float64("grid_factor", eng.Policy().GridFactor).
		Float64("reduction_rate", eng.Policy().ReductionRate).
		Msg("Starting footprint engine")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	<-shutdownDone
}
