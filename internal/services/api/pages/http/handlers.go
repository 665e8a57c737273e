// Package http provides the catch-all page resolution endpoint
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"salaryscope/internal/modkit/httpkit"
	perr "salaryscope/internal/platform/errors"
	svc "salaryscope/internal/services/api/pages/service"
)

// Register mounts the page resolution routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/{country}/*", h.resolve)
	httpkit.Get(r, "/{country}", h.resolve)
}

type handlers struct{ svc svc.Service }

func (h *handlers) resolve(r *stdhttp.Request) (any, error) {
	var segments []string
	for _, s := range strings.Split(httpkit.Wildcard(r), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.InvalidArgf("page must be a number")
		}
		page = p
	}
	return h.svc.Resolve(r.Context(), httpkit.Param(r, "country"), segments, page)
}
