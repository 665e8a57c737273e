// Package http provides http transport for the geographic directory
package http

import (
	stdhttp "net/http"

	"salaryscope/internal/core/slugs"
	"salaryscope/internal/modkit/httpkit"
	svc "salaryscope/internal/services/api/geo/service"
)

// Register mounts geo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/countries", h.countries)
	httpkit.Get(r, "/{country}/states", h.states)
	httpkit.Get(r, "/{country}/{state}/locations", h.locations)
}

type handlers struct{ svc svc.Service }

func (h *handlers) countries(r *stdhttp.Request) (any, error) {
	return h.svc.Countries(r.Context())
}

func (h *handlers) states(r *stdhttp.Request) (any, error) {
	return h.svc.States(r.Context(), httpkit.Param(r, "country"))
}

func (h *handlers) locations(r *stdhttp.Request) (any, error) {
	// the state arrives as a URL slug
	state := slugs.DisplayName(httpkit.Param(r, "state"))
	return h.svc.Locations(r.Context(), httpkit.Param(r, "country"), state)
}
