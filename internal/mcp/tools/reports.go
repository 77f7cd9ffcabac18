package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/report"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// Listing filters shared by list_vacancies and export_vacancies
const (
	FilterAll          = "all"
	FilterAboveAverage = "above_average"
	FilterKeyword      = "keyword"
)

// CompaniesParams defines the arguments for the companies_vacancy_counts tool
type CompaniesParams struct{}

// CompaniesResult is the structured response of companies_vacancy_counts
type CompaniesResult struct {
	Companies []domain.CompanyVacancies `json:"companies" jsonschema:"Employers ordered by vacancy count"`
}

// AverageSalaryParams defines the arguments for the average_salary tool
type AverageSalaryParams struct{}

// AverageSalaryResult is the structured response of average_salary
type AverageSalaryResult struct {
	Average   float64 `json:"average,omitempty" jsonschema:"Mean salary midpoint"`
	Available bool    `json:"available" jsonschema:"False when no vacancy has both salary bounds"`
}

// ListVacanciesParams defines the arguments for the list_vacancies tool
type ListVacanciesParams struct {
	Filter  string `json:"filter,omitempty" jsonschema:"all (default), above_average or keyword"`
	Keyword string `json:"keyword,omitempty" jsonschema:"Case-insensitive title substring, required for the keyword filter"`
}

// ListVacanciesResult is the structured response of list_vacancies
type ListVacanciesResult struct {
	Filter    string                  `json:"filter"`
	Vacancies []domain.VacancyListing `json:"vacancies"`
}

type reportTools struct {
	store  repository.Store
	logger *logging.Logger
}

// WithReports registers the read-only aggregate tools
func WithReports(store repository.Store) Option {
	return func(reg *registry) {
		handler := reportTools{store: store, logger: reg.logger}

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "companies_vacancy_counts",
			Description: "List stored employers with their vacancy counts, most vacancies first",
		}, handler.companies)
		reg.add("companies_vacancy_counts")

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "average_salary",
			Description: "Average salary midpoint over vacancies that publish both salary bounds",
		}, handler.averageSalary)
		reg.add("average_salary")

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_vacancies",
			Description: "List stored vacancies: all, above the average salary, or matching a title keyword",
		}, handler.listVacancies)
		reg.add("list_vacancies")
	}
}

func (t reportTools) companies(ctx context.Context, req *sdkmcp.CallToolRequest, _ *CompaniesParams) (*sdkmcp.CallToolResult, any, error) {
	var result CompaniesResult
	err := repository.WithSession(ctx, t.store, func(s repository.Session) error {
		result.Companies = s.CompaniesWithVacancyCounts(ctx)
		return nil
	})
	if err != nil {
		t.logger.Error("companies_vacancy_counts: session failed", "err", err)
		return nil, nil, fmt.Errorf("store unavailable: %w", err)
	}

	t.logger.Info("companies_vacancy_counts completed", "companies", len(result.Companies))

	if len(result.Companies) == 0 {
		return textResult("[companies_vacancy_counts] No companies stored"), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[companies_vacancy_counts] %d company(ies)\n", len(result.Companies))
	for _, c := range result.Companies {
		fmt.Fprintf(&b, "\n- %s: %d", c.Name, c.Count)
	}
	return textResult(b.String()), result, nil
}

func (t reportTools) averageSalary(ctx context.Context, req *sdkmcp.CallToolRequest, _ *AverageSalaryParams) (*sdkmcp.CallToolResult, any, error) {
	var result AverageSalaryResult
	err := repository.WithSession(ctx, t.store, func(s repository.Session) error {
		result.Average, result.Available = s.AverageSalary(ctx)
		return nil
	})
	if err != nil {
		t.logger.Error("average_salary: session failed", "err", err)
		return nil, nil, fmt.Errorf("store unavailable: %w", err)
	}

	msg := "[average_salary] " + report.FormatAverage(result.Average, result.Available)
	return textResult(msg), result, nil
}

func (t reportTools) listVacancies(ctx context.Context, req *sdkmcp.CallToolRequest, params *ListVacanciesParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &ListVacanciesParams{}
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
		t.logger.Error("list_vacancies: session failed", "err", err)
		return nil, nil, fmt.Errorf("store unavailable: %w", err)
	}

	t.logger.Info("list_vacancies completed", "filter", filter, "keyword", params.Keyword, "vacancies", len(rows))

	result := ListVacanciesResult{Filter: filter, Vacancies: rows}
	return textResult(formatListings("list_vacancies", rows)), result, nil
}

func normalizeFilter(filter, keyword string) (string, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	switch filter {
	case "":
		if strings.TrimSpace(keyword) != "" {
			return FilterKeyword, nil
		}
		return FilterAll, nil
	case FilterAll, FilterAboveAverage:
		return filter, nil
	case FilterKeyword:
		if strings.TrimSpace(keyword) == "" {
			return "", fmt.Errorf("keyword is required for the keyword filter")
		}
		return filter, nil
	default:
		return "", fmt.Errorf("unknown filter %q: use all, above_average or keyword", filter)
	}
}

func selectListings(ctx context.Context, s repository.ReportRepository, filter, keyword string) []domain.VacancyListing {
	switch filter {
	case FilterAboveAverage:
		return s.VacanciesAboveAverage(ctx)
	case FilterKeyword:
		return s.VacanciesByKeyword(ctx, keyword)
	default:
		return s.AllVacancies(ctx)
	}
}
