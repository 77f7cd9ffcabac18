package sheets

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultTab is used when no tab name is given
const DefaultTab = "Vacancies"

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	} else if len(cfg.CredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	} else {
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{service: service}, nil
}

// AppendRows adds rows below the last non-empty row of tab and reports how
// many rows the API wrote.
func (c *Client) AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error) {
	if c == nil || c.service == nil {
		return 0, fmt.Errorf("sheets: service is nil")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	resp, err := c.service.Spreadsheets.Values.Append(spreadsheetID, TabRange(tab, "A1"), &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: append to %s: %w", tab, err)
	}

	if resp.Updates == nil {
		return len(rows), nil
	}
	return int(resp.Updates.UpdatedRows), nil
}

// ReplaceRows clears tab and writes rows starting at A1
func (c *Client) ReplaceRows(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error) {
	if c == nil || c.service == nil {
		return 0, fmt.Errorf("sheets: service is nil")
	}

	if _, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, TabRange(tab, ""), &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return 0, fmt.Errorf("sheets: clear %s: %w", tab, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, TabRange(tab, "A1"), &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: update %s: %w", tab, err)
	}

	return int(resp.UpdatedRows), nil
}

// TabRange builds an A1 range for tab. An empty cell addresses the whole tab.
// Names that are not plain identifiers are quoted.
func TabRange(tab, cell string) string {
	tab = strings.TrimSpace(tab)
	if tab == "" {
		tab = DefaultTab
	}
	if needsQuoting(tab) {
		tab = "'" + strings.ReplaceAll(tab, "'", "''") + "'"
	}
	if cell == "" {
		return tab
	}
	return tab + "!" + cell
}

func needsQuoting(tab string) bool {
	for _, r := range tab {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
