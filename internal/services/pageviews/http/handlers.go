// Package http provides http transport for pageview analytics
package http

import (
	stdhttp "net/http"
	"strconv"

	"salaryscope/internal/modkit/httpkit"
	svc "salaryscope/internal/services/pageviews/service"
)

// Register mounts pageview endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/popular/{country}", h.popular)
}

type handlers struct{ svc svc.Service }

func (h *handlers) popular(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	days, _ := strconv.Atoi(q.Get("days"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return h.svc.Popular(r.Context(), httpkit.Param(r, "country"), days, limit)
}
