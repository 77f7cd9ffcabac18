package mcp

import (
	"github.com/honeycarbs/career-navigator/internal/config"
	"github.com/honeycarbs/career-navigator/internal/domain/ingest"
	"github.com/honeycarbs/career-navigator/internal/mcp/tools"
	"github.com/honeycarbs/career-navigator/internal/repository"
)

// Resources holds everything the MCP tools depend on
type Resources struct {
	Store      repository.Store
	Ingest     ingest.Service
	Catalog    config.Catalog
	Exporter   tools.SheetsExporter
	Predefined PredefinedIDs
}

// PredefinedIDs is the employer id list used by predefined ingestion runs
type PredefinedIDs []string
