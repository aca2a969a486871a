// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/sakefinder/internal/api"
	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/config"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sessions"
	"github.com/tomtom215/sakefinder/internal/supervisor"
	"github.com/tomtom215/sakefinder/internal/supervisor/services"
)

// app is the assembled server. Close releases what buildApp opened.
type app struct {
	tree    *supervisor.SupervisorTree
	handler http.Handler
	server  *http.Server

	closers []closer
}

type closer struct {
	name  string
	close func() error
}

func (a *app) onClose(name string, fn func() error) {
	a.closers = append(a.closers, closer{name: name, close: fn})
}

// Close runs the registered closers newest first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			logging.Error().Err(err).Str("component", c.name).Msg("Error during shutdown")
		}
	}
	a.closers = nil
}

// buildApp creates every component and registers the long-running ones with
// a new supervisor tree. Nothing runs until the tree is served. On error,
// whatever was already opened is closed.
func buildApp(ctx context.Context, cfg *config.Config, version string) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.tree = supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))

	store, err := catalog.NewStore(catalog.Source{
		Path:          cfg.Catalog.Path,
		IncludeMatrix: cfg.Catalog.IncludeMatrix,
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logging.Info().Str("catalog", store.String()).Int("entries", store.Current().Len()).Msg("Catalog loaded")

	engine, err := recommend.NewEngine(&cfg.Recommend, store, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	store.OnReload(func(*catalog.Catalog) { engine.Purge() })

	if cfg.Catalog.Watch && cfg.Catalog.Path != "" {
		a.tree.AddDataService(store)
		logging.Info().Str("path", cfg.Catalog.Path).Msg("Watching catalog file for changes")
	}

	sessionStore, err := sessions.NewStore(cfg.Sessions.StoreConfig())
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	a.onClose("sessions", sessionStore.Close)
	a.tree.AddDataService(sessions.NewJanitor(sessionStore, cfg.Sessions.CleanupInterval))
	manager := sessions.NewManager(sessionStore, diagnosis.DefaultGraph())

	publisher, stats, err := a.initPurchase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tracker, err := purchase.NewTracker(store, publisher, purchase.TrackerConfig{
		AllowedDomains: cfg.Purchase.AllowedDomains,
		Limiter:        cfg.Purchase.LimiterConfig(),
		DedupWindow:    cfg.Purchase.DedupWindow,
	})
	if err != nil {
		return nil, fmt.Errorf("create purchase tracker: %w", err)
	}

	handler, err := api.NewHandler(api.Dependencies{
		Engine:   engine,
		Catalog:  store,
		Sessions: manager,
		Tracker:  tracker,
		Stats:    stats,
		Breaker:  publisher,
		Version:  version,
	})
	if err != nil {
		return nil, fmt.Errorf("create API handler: %w", err)
	}

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mwConfig.TrustedProxies = cfg.Security.TrustedProxies

	// The stats reset endpoint is only mounted outside production.
	a.handler = api.NewRouter(handler, api.NewChiMiddleware(mwConfig), !cfg.IsProduction()).SetupChi()

	a.server = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	a.tree.AddAPIService(services.NewHTTPServerService(a.server, cfg.Server.ShutdownTimeout))

	return a, nil
}

// initPurchase opens the click statistics store and the event bus, and puts
// the forwarder between them in the messaging layer.
func (a *app) initPurchase(ctx context.Context, cfg *config.Config) (*purchase.Publisher, purchase.StatsStore, error) {
	stats, err := openStats(ctx, cfg.Purchase)
	if err != nil {
		return nil, nil, err
	}
	a.onClose("purchase-stats", stats.Close)

	wmLogger := logging.NewWatermillAdapter(logging.WithComponent("purchase-events"))

	pub, sub, err := openEventBus(cfg, wmLogger)
	if err != nil {
		return nil, nil, err
	}
	a.onClose("event-subscriber", sub.Close)
	a.onClose("event-publisher", pub.Close)

	publisher, err := purchase.NewPublisher(pub, cfg.Purchase.Topic, cfg.Purchase.BreakerConfig(), wmLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("create purchase publisher: %w", err)
	}
	a.onClose("purchase-publisher", publisher.Close)

	forwarder, err := purchase.NewForwarder(sub, cfg.Purchase.Topic, stats, wmLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("create purchase forwarder: %w", err)
	}
	a.tree.AddMessagingService(forwarder)

	return publisher, stats, nil
}

func openStats(ctx context.Context, cfg config.PurchaseConfig) (purchase.StatsStore, error) {
	switch cfg.StatsBackend {
	case "duckdb":
		stats, err := purchase.OpenDuckDBStats(ctx, cfg.StatsPath)
		if err != nil {
			return nil, fmt.Errorf("open purchase statistics: %w", err)
		}
		logging.Info().Str("path", cfg.StatsPath).Msg("Purchase statistics in DuckDB")
		return stats, nil
	default:
		return purchase.NewMemoryStats(), nil
	}
}

// openEventBus returns NATS JetStream when enabled, otherwise an in-process
// gochannel. The gochannel serves as both publisher and subscriber.
func openEventBus(cfg *config.Config, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	if !cfg.NATS.Enabled {
		bus := purchase.NewInMemoryPubSub(logger)
		return bus, bus, nil
	}

	pub, sub, err := purchase.NewNATSPubSub(cfg.NATS.PurchaseNATS(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect NATS: %w", err)
	}
	logging.Info().Str("url", cfg.NATS.URL).Msg("Purchase events on NATS JetStream")
	return pub, sub, nil
}
