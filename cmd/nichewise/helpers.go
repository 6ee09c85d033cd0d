package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/classifier"
	"github.com/Veraticus/nichewise/internal/config"
	"github.com/Veraticus/nichewise/internal/engine"
	"github.com/Veraticus/nichewise/internal/rates"
	"github.com/Veraticus/nichewise/internal/revenue"
	"github.com/Veraticus/nichewise/internal/semantic"
	"github.com/Veraticus/nichewise/internal/service"
	"github.com/Veraticus/nichewise/internal/storage"
)

// newEngine builds the full estimation engine from configuration. Storage is
// best-effort: a broken database degrades to in-memory operation with a
// warning rather than blocking classification or estimation.
func newEngine(ctx context.Context) (*engine.Engine, func(), error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	logger := slog.Default()
	mapper := semantic.NewHeuristicMapper(logger)
	cls := classifier.New(cat, mapper, logger)

	var source service.RateSource
	if endpoint := viper.GetString("rates.endpoint"); endpoint != "" {
		source = rates.NewHTTPSource(endpoint,
			viper.GetString("rates.api_key"),
			viper.GetDuration("rates.fetch_timeout"))
	}

	resolver := rates.NewResolver(cat, source, rates.Config{
		CacheTTL:     viper.GetDuration("rates.cache_ttl"),
		FetchTimeout: viper.GetDuration("rates.fetch_timeout"),
		MaxRetries:   viper.GetInt("rates.max_retries"),
	}, logger)

	estimator := revenue.NewEstimator(resolver, logger)

	store, cleanup := openStore(ctx, logger)

	return engine.New(cat, cls, resolver, estimator, store, logger), cleanup, nil
}

// openStore opens the SQLite store when configured, returning a nil store on
// any failure.
func openStore(ctx context.Context, logger *slog.Logger) (service.Storage, func()) {
	path := config.ExpandPath(viper.GetString("database.path"))
	if path == "" {
		return nil, func() {}
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		logger.Warn("failed to open database, continuing without persistence",
			"path", path,
			"error", err)
		return nil, func() {}
	}

	if err := store.Migrate(ctx); err != nil {
		logger.Warn("failed to migrate database, continuing without persistence",
			"path", path,
			"error", err)
		_ = store.Close()
		return nil, func() {}
	}

	return store, func() { _ = store.Close() }
}

// requireStore opens the SQLite store or fails; used by commands that only
// make sense with persistence (review queue, history).
func requireStore(ctx context.Context) (service.Storage, func(), error) {
	path := config.ExpandPath(viper.GetString("database.path"))
	if path == "" {
		return nil, nil, fmt.Errorf("database.path is not configured")
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, func() { _ = store.Close() }, nil
}
