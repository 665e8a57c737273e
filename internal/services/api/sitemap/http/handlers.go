// Package http serves the sitemap document
package http

import (
	stdhttp "net/http"

	"salaryscope/internal/modkit/httpkit"
	phttp "salaryscope/internal/platform/net/http"
	svc "salaryscope/internal/services/api/sitemap/service"
)

// Register mounts /sitemap.xml on the given router. The sitemap is an XML
// document for crawlers, so it bypasses the JSON envelope
func Register(r httpkit.Router, s svc.Service) {
	r.Get("/sitemap.xml", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		body, err := s.XML(req.Context())
		if err != nil {
			phttp.RespondError(w, req, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(body)
	})
}
