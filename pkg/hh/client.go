package hh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/honeycarbs/career-navigator/pkg/logging"
)

const (
	defaultBaseURL          = "https://api.hh.ru"
	defaultUserAgent        = "career-navigator/1.0"
	defaultTimeout          = 10 * time.Second
	defaultVacanciesTimeout = 15 * time.Second
	defaultPageSize         = 20
)

// ErrEmployerNotFound means no alias and no search variant matched the name
var ErrEmployerNotFound = errors.New("hh: employer not found")

// searchSuffixes are appended to the bare name when free-text search misses
var searchSuffixes = []string{" компания", " группа"}

// NewClient instantiates a HeadHunter API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("hh: parse base url: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	vacanciesTimeout := cfg.VacanciesTimeout
	if vacanciesTimeout <= 0 {
		vacanciesTimeout = defaultVacanciesTimeout
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	aliases := cfg.Aliases
	if aliases == nil {
		aliases = DefaultAliases()
	}

	hostOverrides := cfg.HostOverrides
	if hostOverrides == nil {
		hostOverrides = DefaultHostOverrides()
	}

	return &Client{
		baseURL:          baseURL,
		userAgent:        userAgent,
		httpClient:       httpClient,
		timeout:          timeout,
		vacanciesTimeout: vacanciesTimeout,
		limiter:          rate.NewLimiter(limit, 1),
		aliases:          aliases,
		hostOverrides:    hostOverrides,
		cache:            cfg.Cache,
		logger:           logging.OrNop(cfg.Logger),
	}, nil
}

// Ping probes the vacancies endpoint
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("hh: client is nil")
	}
	return c.getJSON(ctx, c.timeout, "/vacancies", nil, nil)
}

// ResolveEmployerID maps a free-text employer name to its id. The alias table
// and the cache are consulted before any search request is issued.
func (c *Client) ResolveEmployerID(ctx context.Context, name string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("hh: client is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmployerNotFound
	}

	if id, ok := c.aliases.Lookup(name); ok {
		return id, nil
	}

	if c.cache != nil {
		if id, ok := c.cache.Get(ctx, name); ok {
			return id, nil
		}
	}

	needle := strings.ToLower(name)
	variants := []string{name}
	for _, suffix := range searchSuffixes {
		variants = append(variants, name+suffix)
	}

	for _, text := range variants {
		values := url.Values{}
		values.Set("text", text)
		values.Set("per_page", "1")
		values.Set("only_with_vacancies", "true")

		var page employerSearchPage
		if err := c.getJSON(ctx, c.timeout, "/employers", values, &page); err != nil {
			return "", err
		}

		for _, item := range page.Items {
			if item.ID == "" {
				continue
			}
			if strings.Contains(strings.ToLower(item.Name), needle) {
				if c.cache != nil {
					c.cache.Set(ctx, name, item.ID)
				}
				return item.ID, nil
			}
		}
	}

	return "", ErrEmployerNotFound
}

// Employer fetches the employer detail payload
func (c *Client) Employer(ctx context.Context, id string) (*Employer, error) {
	if c == nil {
		return nil, fmt.Errorf("hh: client is nil")
	}
	if id == "" {
		return nil, fmt.Errorf("hh: employer id is required")
	}

	var e Employer
	if err := c.getJSON(ctx, c.timeout, path.Join("/employers", url.PathEscape(id)), nil, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// Vacancies fetches the first page of an employer's open vacancies
func (c *Client) Vacancies(ctx context.Context, employerID string, perPage int) ([]Vacancy, error) {
	if c == nil {
		return nil, fmt.Errorf("hh: client is nil")
	}
	if employerID == "" {
		return nil, fmt.Errorf("hh: employer id is required")
	}
	if perPage <= 0 {
		perPage = defaultPageSize
	}

	values := url.Values{}
	values.Set("employer_id", employerID)
	values.Set("per_page", strconv.Itoa(perPage))
	if host, ok := c.hostOverrides[employerID]; ok && host != "" {
		values.Set("host", host)
	}

	var page vacancyPage
	if err := c.getJSON(ctx, c.vacanciesTimeout, "/vacancies", values, &page); err != nil {
		return nil, err
	}

	items := make([]Vacancy, 0, len(page.Items))
	for i, raw := range page.Items {
		var v Vacancy
		if err := json.Unmarshal(raw, &v); err != nil {
			c.logger.Warn("hh: malformed vacancy skipped", "employer_id", employerID, "index", i, "err", err)
			continue
		}
		items = append(items, v)
	}

	return items, nil
}

// getJSON issues a throttled, timeout-bound GET and decodes the body into out.
// A nil out discards the body.
func (c *Client) getJSON(ctx context.Context, timeout time.Duration, p string, values url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("hh: rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.baseURL + p
	if len(values) > 0 {
		u += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("hh: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hh: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("hh: decode response: %w", err)
	}

	return nil
}
