//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/career-navigator/internal/config"
	"github.com/honeycarbs/career-navigator/internal/domain/ingest"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/internal/storage/sqlstore"
	"github.com/honeycarbs/career-navigator/pkg/hh"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		provideCatalog,

		// Infrastructure - relational store
		provideStore,
		wire.Bind(new(repository.Store), new(*sqlstore.Lazy)),

		// Infrastructure - HeadHunter
		provideResolutionCache,
		provideHHConfig,
		hh.NewClient,
		provideSource,

		// Services
		provideIngestSettings,
		ingest.NewServiceWithDeps,

		// Tool resources
		providePredefined,
		provideSheetsExporter,
		newResources,
	)

	return nil, nil, nil
}
