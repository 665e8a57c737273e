// Package module wires pages into the API using modkit
package module

import (
	"net/http"

	"salaryscope/internal/core/routing"
	modkit "salaryscope/internal/modkit"
	"salaryscope/internal/modkit/httpkit"
	str "salaryscope/internal/platform/strings"
	pageshttp "salaryscope/internal/services/api/pages/http"
	pagessvc "salaryscope/internal/services/api/pages/service"
	salariesdom "salaryscope/internal/services/api/salaries/domain"
	viewsdom "salaryscope/internal/services/pageviews/domain"
)

// Ports are the cross-module dependencies pages needs injected
type Ports struct {
	Geo      routing.GeoDirectory
	Salaries salariesdom.ServicePort
	Views    viewsdom.EmitterPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc pagessvc.Service
}

// New constructs a pages module. Callers must inject Ports via
// modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("pages"), modkit.WithPrefix("/pages")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok {
		panic("pages: module requires Ports via modkit.WithPorts")
	}
	svc := pagessvc.New(p.Geo, p.Salaries, p.Views)

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
		pageshttp.Register(r, m.svc)
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
