package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/honeycarbs/career-navigator/internal/domain"
)

// FormatSalary renders salary bounds for people, not parsers
func FormatSalary(lo, hi *int, currency *string) string {
	cur := ""
	if currency != nil && *currency != "" {
		cur = " " + *currency
	}

	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%d-%d%s", *lo, *hi, cur)
	case lo != nil:
		return fmt.Sprintf("from %d%s", *lo, cur)
	case hi != nil:
		return fmt.Sprintf("up to %d%s", *hi, cur)
	default:
		return "not specified"
	}
}

// FormatAverage renders the store-wide average midpoint
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return "not enough data: no vacancy has both salary bounds"
	}
	return fmt.Sprintf("%.2f", avg)
}

// Printer writes aggregate summaries as aligned text
type Printer struct {
	W io.Writer
}

func (p Printer) Companies(rows []domain.CompanyVacancies) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.W, "No companies stored.")
		return err
	}

	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPANY\tVACANCIES")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.Name, r.Count)
	}
	return tw.Flush()
}

func (p Printer) Average(avg float64, ok bool) error {
	_, err := fmt.Fprintf(p.W, "Average salary: %s\n", FormatAverage(avg, ok))
	return err
}

// Listings prints vacancies under a heading; an empty list prints a notice
func (p Printer) Listings(heading string, rows []domain.VacancyListing) error {
	if heading != "" {
		if _, err := fmt.Fprintf(p.W, "%s (%d)\n", heading, len(rows)); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.W, "No vacancies found.")
		return err
	}

	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPANY\tTITLE\tSALARY\tURL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Company, oneLine(r.Title), FormatSalary(r.MinSalary, r.MaxSalary, r.Currency), r.URL)
	}
	return tw.Flush()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
