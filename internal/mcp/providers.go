package mcp

import (
	"context"

	"github.com/honeycarbs/career-navigator/internal/batch"
	rediscache "github.com/honeycarbs/career-navigator/internal/cache/redis"
	"github.com/honeycarbs/career-navigator/internal/config"
	"github.com/honeycarbs/career-navigator/internal/domain/employer"
	hhprovider "github.com/honeycarbs/career-navigator/internal/domain/employer/providers/hh"
	"github.com/honeycarbs/career-navigator/internal/domain/ingest"
	"github.com/honeycarbs/career-navigator/internal/mcp/tools"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/internal/storage/sqlstore"
	"github.com/honeycarbs/career-navigator/pkg/hh"
	"github.com/honeycarbs/career-navigator/pkg/logging"
	sheetsclient "github.com/honeycarbs/career-navigator/pkg/sheets"
)

// provideCatalog loads the optional catalog file over the built-in defaults
func provideCatalog(cfg config.Config) (config.Catalog, error) {
	return config.LoadCatalog(cfg.CatalogPath)
}

// provideStore configures the relational store. The connection is opened and
// migrated by the first session, after the caller's own preconditions.
func provideStore(cfg config.Config, logger *logging.Logger) (*sqlstore.Lazy, func()) {
	store := sqlstore.NewLazy(sqlstore.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.URL,
	}, logger)

	logger.Info("store configured", "driver", cfg.Database.Driver)

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("store close failed", "err", err)
		}
	}
	return store, cleanup
}

// provideResolutionCache connects to Redis when REDIS_URL is set. Connection
// failures disable the cache instead of failing startup.
func provideResolutionCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (hh.ResolutionCache, func()) {
	if cfg.Redis.URL == "" {
		return nil, func() {}
	}

	client, err := rediscache.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Warn("redis unavailable, resolution cache disabled", "err", err)
		return nil, func() {}
	}

	logger.Info("resolution cache enabled", "ttl", cfg.Redis.TTL)
	return rediscache.NewResolutionCache(client, cfg.Redis.TTL, logger), func() {
		_ = client.Close()
	}
}

// provideHHConfig extracts HeadHunter client config from main config
func provideHHConfig(cfg config.Config, catalog config.Catalog, cache hh.ResolutionCache, logger *logging.Logger) hh.Config {
	return hh.Config{
		BaseURL:           cfg.HH.BaseURL,
		UserAgent:         cfg.HH.UserAgent,
		RequestsPerSecond: cfg.HH.RequestsPerSecond,
		Aliases:           catalog.Aliases,
		HostOverrides:     catalog.HostOverrides,
		Cache:             cache,
		Logger:            logger,
	}
}

// provideSource wraps the HeadHunter client as an employer source
func provideSource(client *hh.Client, logger *logging.Logger) (employer.Source, error) {
	return hhprovider.NewProvider(client, logger)
}

func provideIngestSettings(cfg config.Config) ingest.Settings {
	return ingest.Settings{
		PageSize: cfg.HH.PageSize,
		Pacing:   cfg.Ingest.Pacing,
	}
}

// providePredefined reads the batch id file, falling back to the catalog list
func providePredefined(cfg config.Config, catalog config.Catalog, logger *logging.Logger) (PredefinedIDs, error) {
	ids, found, err := batch.LoadEmployerIDs(cfg.EmployersFile, catalog.EmployerIDs())
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Debug("employer id file not found, using catalog list", "path", cfg.EmployersFile, "ids", len(ids))
	}
	return PredefinedIDs(ids), nil
}

// provideSheetsExporter builds the exporter; without credentials it reports
// "not configured" on every export.
func provideSheetsExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.SheetsExporter {
	if cfg.Sheets.CredentialsPath == "" {
		return newSheetsExporter(nil)
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("sheets client unavailable", "err", err)
		return newSheetsExporter(nil)
	}
	return newSheetsExporter(client)
}

func newResources(
	store repository.Store,
	service ingest.Service,
	catalog config.Catalog,
	exporter tools.SheetsExporter,
	predefined PredefinedIDs,
) *Resources {
	return &Resources{
		Store:      store,
		Ingest:     service,
		Catalog:    catalog,
		Exporter:   exporter,
		Predefined: predefined,
	}
}
