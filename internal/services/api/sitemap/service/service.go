// Package service builds the sitemap from the geographic directory and the
// occupation catalog
package service

import (
	"context"
	"encoding/xml"
	"strings"

	"salaryscope/internal/core/slugs"
	geodom "salaryscope/internal/services/api/geo/domain"
)

// SlugSource feeds occupation slugs per country, bounded by limit
type SlugSource interface {
	Slugs(ctx context.Context, country string, limit int) ([]string, error)
}

// Entry is one <url> element
type Entry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// URLSet is the sitemap document root
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Service defines the sitemap contract
type Service interface {
	Build(ctx context.Context) (URLSet, error)
	XML(ctx context.Context) ([]byte, error)
}

// Svc implements the Service interface
type Svc struct {
	geo     geodom.DirectoryPort
	occs    SlugSource
	baseURL string
	maxOccs int
}

// New creates a sitemap service. baseURL is the site origin without a
// trailing slash; maxOccs bounds occupation URLs per country
func New(geo geodom.DirectoryPort, occs SlugSource, baseURL string, maxOccs int) *Svc {
	if geo == nil {
		panic("sitemap.Service requires a non nil geo port")
	}
	if occs == nil {
		panic("sitemap.Service requires a non nil slug source")
	}
	if maxOccs <= 0 {
		maxOccs = 1000
	}
	return &Svc{geo: geo, occs: occs, baseURL: strings.TrimRight(baseURL, "/"), maxOccs: maxOccs}
}

// Build walks countries, states, locations, and occupation slugs into one
// url set. Listing pages change as data is imported, so they carry a weekly
// change frequency; occupation pages monthly
func (s *Svc) Build(ctx context.Context) (URLSet, error) {
	set := URLSet{Xmlns: xmlns}

	countries, err := s.geo.Countries(ctx)
	if err != nil {
		return URLSet{}, err
	}
	for _, country := range countries {
		cSlug := slugs.Make(country)
		set.URLs = append(set.URLs, Entry{Loc: s.baseURL + "/" + cSlug, ChangeFreq: "weekly"})

		states, err := s.geo.States(ctx, country)
		if err != nil {
			return URLSet{}, err
		}
		for _, state := range states {
			sSlug := slugs.Make(state)
			set.URLs = append(set.URLs, Entry{Loc: s.baseURL + "/" + cSlug + "/" + sSlug, ChangeFreq: "weekly"})

			locations, err := s.geo.Locations(ctx, country, state)
			if err != nil {
				return URLSet{}, err
			}
			for _, loc := range locations {
				set.URLs = append(set.URLs, Entry{
					Loc:        s.baseURL + "/" + cSlug + "/" + sSlug + "/" + slugs.Make(loc),
					ChangeFreq: "weekly",
				})
			}
		}

		occs, err := s.occs.Slugs(ctx, country, s.maxOccs)
		if err != nil {
			return URLSet{}, err
		}
		for _, occ := range occs {
			set.URLs = append(set.URLs, Entry{
				Loc:        s.baseURL + "/" + cSlug + "/" + slugs.Encode(occ),
				ChangeFreq: "monthly",
			})
		}
	}
	return set, nil
}

// XML renders the sitemap with the standard document header
func (s *Svc) XML(ctx context.Context) ([]byte, error) {
	set, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
