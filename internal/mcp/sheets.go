package mcp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/mcp/tools"
	"github.com/honeycarbs/career-navigator/internal/report"
	sheetsclient "github.com/honeycarbs/career-navigator/pkg/sheets"
)

var sheetHeader = []any{"Company", "Title", "Salary", "Min", "Max", "Currency", "URL"}

type sheetWriter interface {
	AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error)
	ReplaceRows(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error)
}

type sheetsClientAdapter struct {
	client sheetWriter
	now    func() time.Time
}

var _ tools.SheetsExporter = (*sheetsClientAdapter)(nil)

func newSheetsExporter(client *sheetsclient.Client) *sheetsClientAdapter {
	a := &sheetsClientAdapter{now: time.Now}
	if client != nil {
		a.client = client
	}
	return a
}

func (a *sheetsClientAdapter) Export(ctx context.Context, req tools.SheetsExportRequest) (tools.SheetsExportResult, error) {
	tab := req.Tab
	if tab == "" {
		tab = sheetsclient.DefaultTab
	}

	result := tools.SheetsExportResult{
		ExportID:      uuid.NewString(),
		SpreadsheetID: req.SpreadsheetID,
		Tab:           tab,
		Mode:          "replace",
	}
	if req.Append {
		result.Mode = "append"
	}

	if a.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}

	var (
		written int
		err     error
	)
	if req.Append {
		if len(req.Listings) == 0 {
			result.CompletedAt = a.now().UTC()
			result.Message = "no rows to export"
			return result, nil
		}
		written, err = a.client.AppendRows(ctx, req.SpreadsheetID, tab, listingValues(req.Listings))
	} else {
		rows := append([][]any{sheetHeader}, listingValues(req.Listings)...)
		written, err = a.client.ReplaceRows(ctx, req.SpreadsheetID, tab, rows)
		if written > 0 {
			written--
		}
	}
	if err != nil {
		return result, err
	}

	result.WrittenRows = written
	result.CompletedAt = a.now().UTC()
	result.Message = fmt.Sprintf("exported %d vacancy row(s)", written)

	return result, nil
}

func listingValues(rows []domain.VacancyListing) [][]any {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{
			r.Company,
			r.Title,
			report.FormatSalary(r.MinSalary, r.MaxSalary, r.Currency),
			optionalInt(r.MinSalary),
			optionalInt(r.MaxSalary),
			optionalString(r.Currency),
			r.URL,
		}
	}
	return values
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
