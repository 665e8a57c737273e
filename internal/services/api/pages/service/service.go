// Package service resolves catch-all site URLs into renderable page payloads
package service

import (
	"context"
	"time"

	"salaryscope/internal/core/routing"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/platform/logger"
	"salaryscope/internal/services/api/pages/domain"
	salariesdom "salaryscope/internal/services/api/salaries/domain"
	viewsdom "salaryscope/internal/services/pageviews/domain"
)

// Service defines the service contract for page resolution
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	resolver *routing.Resolver
	salaries salariesdom.ServicePort
	views    viewsdom.EmitterPort
}

// New creates a pages service. The views emitter may be nil, in which case
// no impressions are recorded
func New(geo routing.GeoDirectory, salaries salariesdom.ServicePort, views viewsdom.EmitterPort) *Svc {
	if geo == nil {
		panic("pages.Service requires a non nil GeoDirectory")
	}
	if salaries == nil {
		panic("pages.Service requires a non nil salaries port")
	}
	return &Svc{resolver: routing.NewResolver(geo), salaries: salaries, views: views}
}

// Resolve classifies the path, loads the matching payload, and records an
// impression. Listing pages honor the 1-based page query; anything past the
// end of the listing is not found
func (s *Svc) Resolve(ctx context.Context, country string, segments []string, page int) (domain.Payload, error) {
	var zero domain.Payload

	res, err := s.resolver.Resolve(ctx, country, segments)
	if err != nil {
		return zero, err
	}
	if res.Kind == routing.KindNotFound {
		return zero, perr.NotFoundf("no page at this path")
	}

	p := domain.Payload{
		Kind:        res.Kind.String(),
		Country:     res.Country,
		State:       res.State,
		Location:    res.Location,
		Canonical:   routing.CanonicalPath(res),
		Title:       routing.PageTitle(res),
		Description: routing.PageDescription(res),
		Breadcrumbs: routing.Breadcrumbs(res),
	}

	if res.Kind.IsOccupation() {
		det, err := s.salaries.Get(ctx, salariesdom.DetailInput{
			Country:  res.Country,
			State:    res.State,
			Location: res.Location,
			Slug:     res.OccupationSlug,
		})
		if err != nil {
			return zero, err
		}
		p.Occupation = &det
	} else {
		listing, err := s.salaries.List(ctx, salariesdom.ListInput{
			Country:  res.Country,
			State:    res.State,
			Location: res.Location,
			Page:     page,
		})
		if err != nil {
			return zero, err
		}
		p.Listing = &listing
	}

	s.emit(ctx, res)
	return p, nil
}

// emit records the impression without blocking the response
func (s *Svc) emit(ctx context.Context, res routing.Resolution) {
	if s.views == nil {
		return
	}
	v := viewsdom.View{
		Path:       routing.CanonicalPath(res),
		Country:    res.Country,
		Kind:       res.Kind.String(),
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := s.views.Emit(ctx, v); err != nil {
			logger.Named("pages").Debug().Err(err).Str("path", v.Path).Msg("pageview emit failed")
		}
	}()
}
