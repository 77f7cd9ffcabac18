package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-navigator/internal/mcp/tools"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logging.OrNop(logger)}
}

// RegisterAll registers every tool whose dependencies are present
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) []string {
	if res == nil {
		res = &Resources{}
	}

	var opts []tools.Option
	if res.Store != nil {
		opts = append(opts, tools.WithReports(res.Store))
	} else {
		r.logger.Warn("store not configured, report tools disabled")
	}
	if res.Ingest != nil {
		opts = append(opts, tools.WithIngest(res.Ingest, res.Store, res.Predefined))
	}
	if res.Store != nil {
		opts = append(opts, tools.WithSheetsExport(res.Exporter, res.Store))
	}

	names := tools.Register(server, r.logger, opts...)
	r.logger.Info("MCP tools registered", "tools", names)
	return names
}
