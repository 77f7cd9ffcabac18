package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// Config defines HeadHunter API client settings
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	// Timeout bounds probe, search and detail requests; VacanciesTimeout bounds listing requests.
	Timeout          time.Duration
	VacanciesTimeout time.Duration

	// RequestsPerSecond throttles outgoing requests; zero or less disables throttling.
	RequestsPerSecond float64

	// Aliases short-circuits name resolution. Nil means DefaultAliases().
	Aliases AliasTable

	// HostOverrides maps employer ids to the host parameter their listings need.
	// Nil means DefaultHostOverrides().
	HostOverrides map[string]string

	Cache ResolutionCache

	// Logger receives warnings about listings skipped while decoding. Nil discards them.
	Logger *logging.Logger
}

// ResolutionCache remembers name → employer id lookups between runs.
// Implementations swallow their own failures and report a miss instead.
type ResolutionCache interface {
	Get(ctx context.Context, name string) (string, bool)
	Set(ctx context.Context, name, id string)
}

// Client queries the HeadHunter public API
type Client struct {
	baseURL          string
	userAgent        string
	httpClient       *http.Client
	timeout          time.Duration
	vacanciesTimeout time.Duration
	limiter          *rate.Limiter
	aliases          AliasTable
	hostOverrides    map[string]string
	cache            ResolutionCache
	logger           *logging.Logger
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hh: API error (%d): %s", e.StatusCode, e.Body)
}

// Area is the region block of an employer payload
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Employer is the raw payload of GET /employers/{id}
type Employer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Area         *Area  `json:"area"`
	SiteURL      string `json:"site_url"`
	AlternateURL string `json:"alternate_url"`
}

// EmployerRef is the employer block embedded in a vacancy
type EmployerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Salary bounds are independently optional
type Salary struct {
	From     *int    `json:"from"`
	To       *int    `json:"to"`
	Currency *string `json:"currency"`
}

// Snippet holds the short free-text fields of a listing
type Snippet struct {
	Requirement    *string `json:"requirement"`
	Responsibility *string `json:"responsibility"`
}

// Vacancy is one item of GET /vacancies
type Vacancy struct {
	ID           string       `json:"id"`
	Name         *string      `json:"name"`
	Employer     *EmployerRef `json:"employer"`
	Salary       *Salary      `json:"salary"`
	AlternateURL string       `json:"alternate_url"`
	Snippet      *Snippet     `json:"snippet"`
}

type employerSearchPage struct {
	Found int           `json:"found"`
	Items []EmployerRef `json:"items"`
}

// vacancyPage keeps items raw so one malformed listing does not fail the page
type vacancyPage struct {
	Found int               `json:"found"`
	Pages int               `json:"pages"`
	Items []json.RawMessage `json:"items"`
}
