package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/domain/ingest"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// IngestParams defines the arguments for the ingest_employers tool
type IngestParams struct {
	Names      []string `json:"names,omitempty" jsonschema:"Employer names to resolve on hh.ru"`
	IDs        []string `json:"ids,omitempty" jsonschema:"Known hh.ru employer ids"`
	Predefined bool     `json:"predefined,omitempty" jsonschema:"Ingest the predefined employer list"`
}

// IngestResult is the structured response of ingest_employers
type IngestResult struct {
	Mode      string                    `json:"mode" jsonschema:"names, ids or predefined"`
	Requested int                       `json:"requested"`
	Companies []domain.CompanyVacancies `json:"companies" jsonschema:"Store contents after the run"`
}

type ingestTool struct {
	service    ingest.Service
	store      repository.Store
	predefined []string
	logger     *logging.Logger
}

// WithIngest registers the ingest_employers tool
func WithIngest(service ingest.Service, store repository.Store, predefined []string) Option {
	return func(reg *registry) {
		handler := ingestTool{service: service, store: store, predefined: predefined, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "ingest_employers",
			Description: "Fetch employers and their vacancies from hh.ru and store them; pass exactly one of names, ids or predefined. Existing records are kept",
		}, handler.handle)
		reg.add("ingest_employers")
	}
}

func (t ingestTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *IngestParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &IngestParams{}
	}

	if t.service == nil {
		err := fmt.Errorf("ingest service not configured")
		t.logger.Error("ingest_employers: service not available", "err", err)
		return nil, nil, err
	}

	modes := 0
	for _, set := range []bool{len(params.Names) > 0, len(params.IDs) > 0, params.Predefined} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return nil, nil, fmt.Errorf("names, ids and predefined are mutually exclusive")
	}

	result := IngestResult{}
	var err error

	switch {
	case len(params.Names) > 0:
		result.Mode, result.Requested = "names", len(params.Names)
		err = t.service.LoadByNames(ctx, params.Names)
	case len(params.IDs) > 0:
		result.Mode, result.Requested = "ids", len(params.IDs)
		err = t.service.LoadByIDs(ctx, params.IDs)
	case params.Predefined:
		result.Mode, result.Requested = "predefined", len(t.predefined)
		err = t.service.LoadByIDs(ctx, t.predefined)
	default:
		return nil, nil, fmt.Errorf("one of names, ids or predefined is required")
	}

	t.logger.Info("ingest_employers request", "mode", result.Mode, "requested", result.Requested)

	if err != nil {
		t.logger.Error("ingest_employers: run aborted", "mode", result.Mode, "err", err)
		switch {
		case errors.Is(err, ingest.ErrSourceUnreachable):
			return nil, nil, fmt.Errorf("hh.ru is unreachable, nothing was ingested")
		case errors.Is(err, ingest.ErrStoreUnavailable):
			return nil, nil, fmt.Errorf("store is unavailable, nothing was ingested")
		default:
			return nil, nil, fmt.Errorf("ingestion failed: %w", err)
		}
	}

	if t.store != nil {
		if err := repository.WithSession(ctx, t.store, func(s repository.Session) error {
			result.Companies = s.CompaniesWithVacancyCounts(ctx)
			return nil
		}); err != nil {
			t.logger.Warn("ingest_employers: summary unavailable", "err", err)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[ingest_employers] Completed %s run for %d input(s)", result.Mode, result.Requested)
	if len(result.Companies) > 0 {
		fmt.Fprintf(&b, "\nStore now holds %d company(ies):", len(result.Companies))
		for _, c := range result.Companies {
			fmt.Fprintf(&b, "\n- %s: %d", c.Name, c.Count)
		}
	}

	return textResult(b.String()), result, nil
}
