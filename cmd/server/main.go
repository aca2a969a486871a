// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/sakefinder/internal/config"
	"github.com/tomtom215/sakefinder/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.InitConfig())

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Str("session_store", cfg.Sessions.Store).
		Str("stats_backend", cfg.Purchase.StatsBackend).
		Bool("nats", cfg.NATS.Enabled).
		Msg("Starting Sakefinder")

	a, err := buildApp(context.Background(), cfg, version)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize")
		os.Exit(1)
	}

	watchLogLevel()
	run(a)
	a.Close()

	logging.Info().Msg("Sakefinder stopped")
}

// run serves the supervisor tree until SIGINT or SIGTERM.
func run(a *app) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := a.tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := a.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
}

// watchLogLevel applies LOG_LEVEL changes from the config file without a
// restart. Every other setting still needs one.
func watchLogLevel() {
	path := config.ConfigFile()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.LoadWithKoanf()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config file change")
			return
		}
		logging.SetLevelString(cfg.Logging.Level)
		logging.Info().Str("level", cfg.Logging.Level).Msg("Log level reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
