// Package domain holds DTOs for resolved site pages
package domain

import (
	"salaryscope/internal/core/routing"
	salariesdom "salaryscope/internal/services/api/salaries/domain"
)

// Payload is everything a renderer needs for one resolved URL: the
// classification, SEO metadata, and either a listing page or an occupation
// detail depending on the kind
type Payload struct {
	Kind        string         `json:"kind"`
	Country     string         `json:"country"`
	State       string         `json:"state,omitempty"`
	Location    string         `json:"location,omitempty"`
	Canonical   string         `json:"canonical"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Breadcrumbs []routing.Crumb `json:"breadcrumbs"`

	Listing    *salariesdom.ListResult       `json:"listing,omitempty"`
	Occupation *salariesdom.OccupationDetail `json:"occupation,omitempty"`
}
