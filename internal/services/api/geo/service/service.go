// Package service contains geography lookup workflows
package service

import (
	"context"

	"salaryscope/internal/modkit/repokit"
	"salaryscope/internal/services/api/geo/domain"
	"salaryscope/internal/services/api/geo/repo"
)

// Service defines the service contract for geography
type Service interface{ domain.DirectoryPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new geo service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("geo.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("geo.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Countries lists every country with salary data
func (s *Svc) Countries(ctx context.Context) ([]string, error) {
	return s.Repo.Countries(ctx)
}

// States lists state display names for a country
func (s *Svc) States(ctx context.Context, country string) ([]string, error) {
	return s.Repo.States(ctx, country)
}

// Locations lists location display names under a state
func (s *Svc) Locations(ctx context.Context, country, state string) ([]string, error) {
	return s.Repo.Locations(ctx, country, state)
}
