// Package service contains salary listing workflows
package service

import (
	"context"
	"strings"

	"salaryscope/internal/core/paging"
	"salaryscope/internal/modkit/repokit"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/services/api/salaries/domain"
	"salaryscope/internal/services/api/salaries/repo"
)

// Service defines the service contract for salaries
type Service interface {
	domain.ServicePort

	// Slugs feeds the sitemap builder
	Slugs(ctx context.Context, country string, limit int) ([]string, error)
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	reg    *paging.Registry
}

// New creates a new salaries service. A nil registry falls back to the
// process-wide default
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], reg *paging.Registry) *Svc {
	if db == nil {
		panic("salaries.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("salaries.Service requires a non nil Repo binder")
	}
	if reg == nil {
		reg = paging.Default
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, reg: reg}
}

// List resolves one page of an occupation listing. Page numbers past the end
// of the result set come back as not found, never clamped to the last page
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	var zero domain.ListResult

	in.Query = strings.TrimSpace(in.Query)
	if len(in.Query) > 100 {
		return zero, perr.InvalidArgf("search query exceeds 100 characters")
	}
	in.Letter = strings.ToLower(strings.TrimSpace(in.Letter))
	if len(in.Letter) > 1 {
		return zero, perr.InvalidArgf("letter filter must be a single character")
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}

	f := repo.Filter{
		Country:  in.Country,
		State:    in.State,
		Location: in.Location,
		Query:    in.Query,
		Letter:   in.Letter,
	}
	scope := paging.Scope{
		Country:      in.Country,
		State:        in.State,
		Location:     in.Location,
		SearchQuery:  in.Query,
		LetterFilter: in.Letter,
		Limit:        limit,
	}
	fetch := func(ctx context.Context, cursor string) (paging.Page[domain.OccupationSummary], error) {
		rows, next, err := s.Repo.ListOccupations(ctx, f, cursor, limit)
		if err != nil {
			return paging.Page[domain.OccupationSummary]{}, err
		}
		items := make([]domain.OccupationSummary, 0, len(rows))
		for _, r := range rows {
			items = append(items, domain.OccupationSummary{
				Slug:      r.Slug,
				Title:     r.Title,
				AvgSalary: r.AvgSalary,
				Currency:  r.Currency,
				Records:   r.Records,
			})
		}
		return paging.Page[domain.OccupationSummary]{Items: items, NextCursor: next}, nil
	}

	res, err := paging.ResolveCursorForPage(ctx, s.reg, scope, page, fetch)
	if err != nil {
		return zero, err
	}
	if !res.Available {
		return zero, perr.NotFoundf("page %d is past the end of this listing", page)
	}

	pg, err := fetch(ctx, res.Cursor)
	if err != nil {
		return zero, err
	}
	s.reg.RememberNextCursor(scope, page, pg.NextCursor)

	return domain.ListResult{
		Items:    pg.Items,
		Page:     page,
		PageSize: limit,
		HasNext:  pg.NextCursor != "",
	}, nil
}

// Get returns the aggregate detail for one occupation
func (s *Svc) Get(ctx context.Context, in domain.DetailInput) (domain.OccupationDetail, error) {
	row, err := s.Repo.GetOccupation(ctx, repo.Filter{
		Country:  in.Country,
		State:    in.State,
		Location: in.Location,
	}, in.Slug)
	if err != nil {
		return domain.OccupationDetail{}, err
	}
	return domain.OccupationDetail{
		Slug:      row.Slug,
		Title:     row.Title,
		Country:   in.Country,
		State:     in.State,
		Location:  in.Location,
		AvgSalary: row.AvgSalary,
		MinSalary: row.MinSalary,
		MaxSalary: row.MaxSalary,
		Currency:  row.Currency,
		Records:   row.Records,
	}, nil
}

// Slugs lists distinct occupation slugs for a country, bounded by limit
func (s *Svc) Slugs(ctx context.Context, country string, limit int) ([]string, error) {
	return s.Repo.Slugs(ctx, country, limit)
}
