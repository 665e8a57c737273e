// Package http provides http transport for salary listings
package http

import (
	stdhttp "net/http"
	"strconv"

	"salaryscope/internal/core/slugs"
	"salaryscope/internal/modkit/httpkit"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/services/api/salaries/domain"
	svc "salaryscope/internal/services/api/salaries/service"
)

// Register mounts salaries endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/{country}", h.listCountry)
	httpkit.Get(r, "/{country}/occupations/{slug}", h.detail)
	httpkit.Get(r, "/{country}/{state}", h.listState)
	httpkit.Get(r, "/{country}/{state}/{location}", h.listLocation)
}

type handlers struct{ svc svc.Service }

func (h *handlers) listCountry(r *stdhttp.Request) (any, error) {
	return h.list(r, "", "")
}

func (h *handlers) listState(r *stdhttp.Request) (any, error) {
	return h.list(r, slugs.DisplayName(httpkit.Param(r, "state")), "")
}

func (h *handlers) listLocation(r *stdhttp.Request) (any, error) {
	return h.list(r,
		slugs.DisplayName(httpkit.Param(r, "state")),
		slugs.DisplayName(httpkit.Param(r, "location")))
}

func (h *handlers) list(r *stdhttp.Request, state, location string) (any, error) {
	q := r.URL.Query()
	page := 0
	if raw := q.Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.InvalidArgf("page must be a number")
		}
		page = p
	}
	out, err := h.svc.List(r.Context(), domain.ListInput{
		Country:  httpkit.Param(r, "country"),
		State:    state,
		Location: location,
		Query:    q.Get("q"),
		Letter:   q.Get("letter"),
		Page:     page,
	})
	if err != nil {
		return nil, err
	}
	return httpkit.List(out.Items, out.Page, out.PageSize, out.HasNext), nil
}

func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.Get(r.Context(), domain.DetailInput{
		Country:  httpkit.Param(r, "country"),
		State:    q.Get("state"),
		Location: q.Get("location"),
		Slug:     slugs.Decode(httpkit.Param(r, "slug")),
	})
}
