// Package module wires admin into the API using modkit
package module

import (
	"net/http"

	"salaryscope/internal/core/paging"
	modkit "salaryscope/internal/modkit"
	"salaryscope/internal/modkit/httpkit"
	"salaryscope/internal/platform/net/middleware"
	str "salaryscope/internal/platform/strings"
	adminhttp "salaryscope/internal/services/api/admin/http"
	adminrepo "salaryscope/internal/services/api/admin/repo"
	adminsvc "salaryscope/internal/services/api/admin/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc adminsvc.Service
}

// New constructs an admin module. Every route is behind bearer auth with the
// token from ADMIN_TOKEN
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	auth := httpkit.Auth(middleware.BearerToken{
		Token: deps.Cfg.MustString("ADMIN_TOKEN"),
		Actor: "admin",
	})
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("admin"),
		modkit.WithPrefix("/admin"),
		modkit.WithMiddlewares(auth),
	}, opts...)...)

	svc := adminsvc.New(deps.PG, adminrepo.NewPG(), paging.Default)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptServicePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		adminhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
