package hh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type recordedRequest struct {
	Path  string
	Query map[string]string
	Agent string
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	handle   func(w http.ResponseWriter, r *http.Request)
}

func newFakeAPI(t *testing.T, handle func(w http.ResponseWriter, r *http.Request)) (*fakeAPI, *Client) {
	t.Helper()
	return newFakeAPIWithConfig(t, Config{UserAgent: "navigator-test"}, handle)
}

func newFakeAPIWithConfig(t *testing.T, cfg Config, handle func(w http.ResponseWriter, r *http.Request)) (*fakeAPI, *Client) {
	t.Helper()

	api := &fakeAPI{handle: handle}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{Path: r.URL.Path, Query: q, Agent: r.UserAgent()})
		api.mu.Unlock()
		api.handle(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL + "/"
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return api, client
}

func (a *fakeAPI) calls() []recordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]recordedRequest(nil), a.requests...)
}

type memoryCache struct {
	entries map[string]string
	sets    int
}

func (m *memoryCache) Get(_ context.Context, name string) (string, bool) {
	id, ok := m.entries[name]
	return id, ok
}

func (m *memoryCache) Set(_ context.Context, name, id string) {
	m.entries[name] = id
	m.sets++
}

func TestPing(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	calls := api.calls()
	if len(calls) != 1 || calls[0].Path != "/vacancies" {
		t.Fatalf("unexpected requests: %+v", calls)
	}
	if calls[0].Agent != "navigator-test" {
		t.Fatalf("User-Agent = %q", calls[0].Agent)
	}
}

func TestPingNon2xx(t *testing.T) {
	_, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})

	err := client.Ping(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("StatusCode = %d", statusErr.StatusCode)
	}
}

func TestPingTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestResolveEmployerIDAliasSkipsNetwork(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	id, err := client.ResolveEmployerID(context.Background(), "Sberbank")
	if err != nil {
		t.Fatalf("ResolveEmployerID: %v", err)
	}
	if id != "3529" {
		t.Fatalf("id = %q, want 3529", id)
	}
	if n := len(api.calls()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestResolveEmployerIDSearchVariants(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("text") {
		case "Ozon":
			_, _ = w.Write([]byte(`{"found":1,"items":[{"id":"1","name":"Unrelated LLC"}]}`))
		case "Ozon компания":
			_, _ = w.Write([]byte(`{"found":0,"items":[]}`))
		case "Ozon группа":
			_, _ = w.Write([]byte(`{"found":1,"items":[{"id":"907345","name":"OZON Group"}]}`))
		default:
			t.Errorf("unexpected text %q", r.URL.Query().Get("text"))
		}
	})

	id, err := client.ResolveEmployerID(context.Background(), "Ozon")
	if err != nil {
		t.Fatalf("ResolveEmployerID: %v", err)
	}
	if id != "907345" {
		t.Fatalf("id = %q, want 907345", id)
	}

	calls := api.calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 search requests, got %d", len(calls))
	}
	for _, c := range calls {
		if c.Path != "/employers" || c.Query["per_page"] != "1" || c.Query["only_with_vacancies"] != "true" {
			t.Fatalf("unexpected search request: %+v", c)
		}
	}
}

func TestResolveEmployerIDNotFound(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found":0,"items":[]}`))
	})

	_, err := client.ResolveEmployerID(context.Background(), "Nonexistent Widgets")
	if !errors.Is(err, ErrEmployerNotFound) {
		t.Fatalf("expected ErrEmployerNotFound, got %v", err)
	}
	if n := len(api.calls()); n != 3 {
		t.Fatalf("expected 3 requests, got %d", n)
	}
}

func TestResolveEmployerIDStopsOnHTTPError(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.ResolveEmployerID(context.Background(), "Acme")
	if err == nil || errors.Is(err, ErrEmployerNotFound) {
		t.Fatalf("expected transport-class error, got %v", err)
	}
	if n := len(api.calls()); n != 1 {
		t.Fatalf("expected 1 request, got %d", n)
	}
}

func TestResolveEmployerIDUsesCache(t *testing.T) {
	cache := &memoryCache{entries: map[string]string{}}
	api, client := newFakeAPIWithConfig(t, Config{Cache: cache}, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found":1,"items":[{"id":"2180","name":"Kaspersky Lab"}]}`))
	})

	for i := 0; i < 2; i++ {
		id, err := client.ResolveEmployerID(context.Background(), "Kaspersky")
		if err != nil {
			t.Fatalf("ResolveEmployerID #%d: %v", i, err)
		}
		if id != "2180" {
			t.Fatalf("id = %q", id)
		}
	}

	if n := len(api.calls()); n != 1 {
		t.Fatalf("expected 1 request with cache, got %d", n)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
}

func TestEmployer(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"1740","name":"Yandex","alternate_url":"https://hh.ru/employer/1740","area":{"id":"1","name":"Moscow"}}`))
	})

	e, err := client.Employer(context.Background(), "1740")
	if err != nil {
		t.Fatalf("Employer: %v", err)
	}
	if e.Name != "Yandex" || e.Area == nil || e.Area.Name != "Moscow" || e.SiteURL != "" {
		t.Fatalf("unexpected employer: %+v", e)
	}
	if p := api.calls()[0].Path; p != "/employers/1740" {
		t.Fatalf("path = %q", p)
	}
}

func TestVacanciesHostOverride(t *testing.T) {
	api, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found":1,"pages":1,"items":[{"id":"v1","name":"Engineer","salary":{"from":100000,"to":null,"currency":"RUR"}}]}`))
	})

	items, err := client.Vacancies(context.Background(), "39305", 0)
	if err != nil {
		t.Fatalf("Vacancies: %v", err)
	}
	if len(items) != 1 || items[0].Salary == nil || items[0].Salary.To != nil || *items[0].Salary.From != 100000 {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := client.Vacancies(context.Background(), "1740", 5); err != nil {
		t.Fatalf("Vacancies: %v", err)
	}

	calls := api.calls()
	if calls[0].Query["host"] != "hh.ru" || calls[0].Query["per_page"] != "20" || calls[0].Query["employer_id"] != "39305" {
		t.Fatalf("unexpected override request: %+v", calls[0])
	}
	if _, ok := calls[1].Query["host"]; ok {
		t.Fatalf("host set for employer without override: %+v", calls[1])
	}
	if calls[1].Query["per_page"] != "5" {
		t.Fatalf("per_page = %q", calls[1].Query["per_page"])
	}
}

func TestVacanciesDecodeError(t *testing.T) {
	_, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.Vacancies(context.Background(), "1740", 20)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestVacanciesSkipsMalformedListing(t *testing.T) {
	_, client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found":3,"pages":1,"items":[
			{"id":"v1","name":"Engineer","salary":{"from":100000,"to":150000,"currency":"RUR"}},
			{"id":"v2","name":"Analyst","salary":{"from":100000.5,"to":null,"currency":"RUR"}},
			{"id":"v3","name":"Designer"}
		]}`))
	})

	items, err := client.Vacancies(context.Background(), "1740", 20)
	if err != nil {
		t.Fatalf("Vacancies: %v", err)
	}
	if len(items) != 2 || items[0].ID != "v1" || items[1].ID != "v3" {
		t.Fatalf("expected v1 and v3 to survive, got %+v", items)
	}
	if items[0].Salary == nil || *items[0].Salary.To != 150000 {
		t.Fatalf("unexpected salary: %+v", items[0].Salary)
	}
}
