package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// SheetsExporter writes vacancy listings to a spreadsheet
type SheetsExporter interface {
	Export(ctx context.Context, req SheetsExportRequest) (SheetsExportResult, error)
}

// SheetsExportRequest is what the tool hands to the exporter
type SheetsExportRequest struct {
	SpreadsheetID string
	Tab           string
	Append        bool
	Listings      []domain.VacancyListing
}

// SheetsExportParams defines the arguments for the export_vacancies tool
type SheetsExportParams struct {
	Filter  string `json:"filter,omitempty" jsonschema:"all (default), above_average or keyword"`
	Keyword string `json:"keyword,omitempty" jsonschema:"Title substring for the keyword filter"`
	Append  bool   `json:"append,omitempty" jsonschema:"Append below existing rows instead of replacing the tab"`
	Sheet   struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab name, defaults to Vacancies"`
	} `json:"sheet" jsonschema:"Destination sheet information"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	ExportID      string    `json:"export_id" jsonschema:"Identifier of this export run"`
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	Filter        string    `json:"filter"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many vacancy rows were written"`
	Mode          string    `json:"mode" jsonschema:"append or replace"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

type sheetsExportTool struct {
	exporter SheetsExporter
	store    repository.Store
	logger   *logging.Logger
}

// WithSheetsExport registers the export_vacancies tool
func WithSheetsExport(exporter SheetsExporter, store repository.Store) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{exporter: exporter, store: store, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_vacancies",
			Description: "Export stored vacancies to Google Sheets using the same filters as list_vacancies",
		}, handler.handle)
		reg.add("export_vacancies")
	}
}

func (t sheetsExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("sheet.spreadsheet_id is required")
	}
	if t.exporter == nil {
		return nil, nil, fmt.Errorf("sheets exporter not configured")
	}

	filter, err := normalizeFilter(params.Filter, params.Keyword)
	if err != nil {
		return nil, nil, err
	}

	var rows []domain.VacancyListing
	err = repository.WithSession(ctx, t.store, func(s repository.Session) error {
		rows = selectListings(ctx, s, filter, params.Keyword)
		return nil
	})
	if err != nil {
		t.logger.Error("export_vacancies: session failed", "err", err)
		return nil, nil, fmt.Errorf("store unavailable: %w", err)
	}

	result, err := t.exporter.Export(ctx, SheetsExportRequest{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
		Append:        params.Append,
		Listings:      rows,
	})
	if err != nil {
		t.logger.Error("export_vacancies: export failed",
			"spreadsheet_id", params.Sheet.SpreadsheetID,
			"tab", params.Sheet.Tab,
			"err", err,
		)
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}
	result.Filter = filter

	t.logger.Info("export_vacancies completed",
		"export_id", result.ExportID,
		"spreadsheet_id", result.SpreadsheetID,
		"tab", result.Tab,
		"rows", result.WrittenRows,
		"mode", result.Mode,
	)

	msg := fmt.Sprintf("[export_vacancies] %s (spreadsheet=%s tab=%s filter=%s)", result.Message, result.SpreadsheetID, result.Tab, filter)
	return textResult(msg), result, nil
}
