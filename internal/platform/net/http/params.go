package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Param reads a named chi route parameter from the request
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// Wildcard reads the trailing catch-all segment of a chi route
func Wildcard(r *http.Request) string {
	return chi.URLParam(r, "*")
}
