package hh

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/domain/employer"
	"github.com/honeycarbs/career-navigator/pkg/hh"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// apiClient describes the subset of the hh client used by the provider.
type apiClient interface {
	Ping(ctx context.Context) error
	ResolveEmployerID(ctx context.Context, name string) (string, error)
	Employer(ctx context.Context, id string) (*hh.Employer, error)
	Vacancies(ctx context.Context, employerID string, perPage int) ([]hh.Vacancy, error)
}

// Provider implements employer.Source using the HeadHunter API
type Provider struct {
	client apiClient
	logger *logging.Logger
}

// NewProvider builds an hh provider
func NewProvider(client apiClient, logger *logging.Logger) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("hh provider: client is required")
	}
	return &Provider{client: client, logger: logging.OrNop(logger)}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "hh"
}

func (p *Provider) Ping(ctx context.Context) bool {
	if err := p.client.Ping(ctx); err != nil {
		p.logger.Warn("hh unreachable", "err", err)
		return false
	}
	return true
}

func (p *Provider) ResolveEmployerID(ctx context.Context, name string) (string, bool) {
	id, err := p.client.ResolveEmployerID(ctx, name)
	switch {
	case errors.Is(err, hh.ErrEmployerNotFound):
		p.logger.Info("employer not found", "name", name)
		return "", false
	case err != nil:
		p.logger.Warn("employer resolution failed", "name", name, "err", err)
		return "", false
	}

	p.logger.Debug("employer resolved", "name", name, "employer_id", id)
	return id, true
}

func (p *Provider) Employer(ctx context.Context, id string) (domain.Employer, bool) {
	raw, err := p.client.Employer(ctx, id)
	if err != nil {
		p.logger.Warn("employer detail fetch failed", "employer_id", id, "err", err)
		return domain.Employer{}, false
	}
	return NormalizeEmployer(*raw), true
}

func (p *Provider) Vacancies(ctx context.Context, employerID string, perPage int) []domain.Vacancy {
	raw, err := p.client.Vacancies(ctx, employerID, perPage)
	if err != nil {
		p.logger.Warn("vacancy fetch failed", "employer_id", employerID, "err", err)
		return nil
	}

	out := make([]domain.Vacancy, 0, len(raw))
	for _, item := range raw {
		out = append(out, NormalizeVacancy(item))
	}
	return out
}

var _ employer.Source = (*Provider)(nil)
