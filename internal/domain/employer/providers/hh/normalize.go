package hh

import (
	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/pkg/hh"
)

// NormalizeEmployer maps an employer payload to the domain model.
// Missing fields become empty strings or nil, it never fails.
func NormalizeEmployer(raw hh.Employer) domain.Employer {
	e := domain.Employer{
		ID:   raw.ID,
		Name: raw.Name,
	}

	if raw.Area != nil && raw.Area.Name != "" {
		e.Location = strPtr(raw.Area.Name)
	}

	switch {
	case raw.SiteURL != "":
		e.Website = strPtr(raw.SiteURL)
	case raw.AlternateURL != "":
		e.Website = strPtr(raw.AlternateURL)
	}

	return e
}

// NormalizeVacancy maps a listing payload to the domain model
func NormalizeVacancy(raw hh.Vacancy) domain.Vacancy {
	v := domain.Vacancy{
		ID:    raw.ID,
		Title: domain.UntitledVacancy,
		URL:   raw.AlternateURL,
	}

	if raw.Name != nil {
		v.Title = *raw.Name
	}

	if raw.Employer != nil {
		v.EmployerID = raw.Employer.ID
	}

	if raw.Salary != nil {
		v.MinSalary = raw.Salary.From
		v.MaxSalary = raw.Salary.To
		v.Currency = raw.Salary.Currency
	}

	if raw.Snippet != nil {
		v.Description = firstNonEmpty(raw.Snippet.Requirement, raw.Snippet.Responsibility)
	}

	return v
}

func firstNonEmpty(values ...*string) *string {
	for _, s := range values {
		if s != nil && *s != "" {
			return strPtr(*s)
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
