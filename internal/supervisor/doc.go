// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

/*
Package supervisor runs Sakefinder's long-lived goroutines under suture v4.

# Tree

	sakefinder
	├── data-layer
	│   ├── catalog watcher (when CATALOG_PATH and CATALOG_WATCH are set)
	│   └── session janitor
	├── messaging-layer
	│   └── purchase forwarder (gochannel, or NATS with the nats build tag)
	└── api-layer
	    └── http-server (services.HTTPServerService)

Each layer is its own supervisor with independent failure counting, so a
service that keeps crashing backs off inside its layer without restarting
its siblings.

# Usage

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(),
		supervisor.TreeConfigFrom(cfg.Supervisor))
	tree.AddDataService(janitor)
	tree.AddMessagingService(forwarder)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("supervisor exited")
	}

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog onto the zerolog-backed slog handler from the logging package.

Any type with Serve(ctx) error satisfies suture.Service. Serve must return
promptly once ctx is done; services.HTTPServerService adapts *http.Server.
*/
package supervisor
