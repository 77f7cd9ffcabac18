package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/honeycarbs/career-navigator/internal/domain"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		currency *string
		want     string
	}{
		{name: "range", min: intPtr(100000), max: intPtr(150000), currency: strPtr("RUR"), want: "100000-150000 RUR"},
		{name: "from", min: intPtr(90000), currency: strPtr("USD"), want: "from 90000 USD"},
		{name: "up to", max: intPtr(70000), currency: strPtr("EUR"), want: "up to 70000 EUR"},
		{name: "no currency", min: intPtr(1), max: intPtr(2), want: "1-2"},
		{name: "none", currency: strPtr("RUR"), want: "not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSalary(tt.min, tt.max, tt.currency); got != tt.want {
				t.Fatalf("FormatSalary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAverage(t *testing.T) {
	if got := FormatAverage(125000, true); got != "125000.00" {
		t.Fatalf("got %q", got)
	}
	if got := FormatAverage(0, false); !strings.HasPrefix(got, "not enough data") {
		t.Fatalf("got %q", got)
	}
}

func TestPrinterCompanies(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{W: &buf}

	if err := p.Companies([]domain.CompanyVacancies{{Name: "Yandex", Count: 20}, {Name: "Sber", Count: 0}}); err != nil {
		t.Fatalf("Companies: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"COMPANY", "Yandex", "20", "Sber"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinterListings(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{W: &buf}

	rows := []domain.VacancyListing{{
		Company:   "Yandex",
		Title:     "Go\nDeveloper",
		MinSalary: intPtr(100000),
		Currency:  strPtr("RUR"),
		URL:       "https://hh.ru/vacancy/1",
	}}
	if err := p.Listings("Vacancies", rows); err != nil {
		t.Fatalf("Listings: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Vacancies (1)", "Go Developer", "from 100000 RUR", "https://hh.ru/vacancy/1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := p.Listings("", nil); err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if !strings.Contains(buf.String(), "No vacancies found.") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}
