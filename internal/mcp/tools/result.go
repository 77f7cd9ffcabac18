package tools

import (
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/report"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

func formatListings(tool string, rows []domain.VacancyListing) string {
	if len(rows) == 0 {
		return fmt.Sprintf("[%s] No vacancies found", tool)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %d vacancy(ies)\n", tool, len(rows))
	for _, r := range rows {
		fmt.Fprintf(&b, "\n- %s: %s (%s) %s", r.Company, r.Title, report.FormatSalary(r.MinSalary, r.MaxSalary, r.Currency), r.URL)
	}
	return b.String()
}
