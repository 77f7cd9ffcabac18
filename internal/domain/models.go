package domain

// UntitledVacancy is stored when a listing arrives without a title
const UntitledVacancy = "Без названия"

// Employer is the normalized hiring organization
type Employer struct {
	ID       string  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Location *string `db:"location" json:"location,omitempty"`
	Website  *string `db:"website" json:"website,omitempty"`
}

// Vacancy is a normalized job listing owned by one Employer.
// Salary bounds are independent; min <= max is not guaranteed.
type Vacancy struct {
	ID          string  `db:"id" json:"id"`
	EmployerID  string  `db:"employer_id" json:"employer_id"`
	Title       string  `db:"title" json:"title"`
	MinSalary   *int    `db:"min_salary" json:"min_salary,omitempty"`
	MaxSalary   *int    `db:"max_salary" json:"max_salary,omitempty"`
	Currency    *string `db:"currency" json:"currency,omitempty"`
	URL         string  `db:"url" json:"url"`
	Description *string `db:"description" json:"description,omitempty"`
}

// AverageSalary is the mean of the present bounds, the single present
// bound, or zero when neither is set.
func (v Vacancy) AverageSalary() float64 {
	switch {
	case v.MinSalary != nil && v.MaxSalary != nil:
		return (float64(*v.MinSalary) + float64(*v.MaxSalary)) / 2
	case v.MinSalary != nil:
		return float64(*v.MinSalary)
	case v.MaxSalary != nil:
		return float64(*v.MaxSalary)
	default:
		return 0
	}
}

// Midpoint reports (min+max)/2 only when both bounds are present
func (v Vacancy) Midpoint() (float64, bool) {
	if v.MinSalary == nil || v.MaxSalary == nil {
		return 0, false
	}
	return (float64(*v.MinSalary) + float64(*v.MaxSalary)) / 2, true
}

// VacancyListing is the read-side view of a vacancy joined with its employer
type VacancyListing struct {
	Company   string  `db:"company" json:"company"`
	Title     string  `db:"title" json:"title"`
	MinSalary *int    `db:"min_salary" json:"min_salary,omitempty"`
	MaxSalary *int    `db:"max_salary" json:"max_salary,omitempty"`
	Currency  *string `db:"currency" json:"currency,omitempty"`
	URL       string  `db:"url" json:"url"`
}

// CompanyVacancies counts stored vacancies per employer
type CompanyVacancies struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"vacancy_count" json:"count"`
}

// NamedEmployer pairs a display name with a known employer id
type NamedEmployer struct {
	Name string `yaml:"name" json:"name"`
	ID   string `yaml:"id" json:"id"`
}
