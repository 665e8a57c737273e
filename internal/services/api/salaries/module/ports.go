package module

import (
	"context"

	salariesdom "salaryscope/internal/services/api/salaries/domain"
	salariessvc "salaryscope/internal/services/api/salaries/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the salaries service to the domain port interface
type adaptServicePort struct{ svc salariessvc.Service }

var _ salariesdom.ServicePort = adaptServicePort{}

// List implements the domain ServicePort interface
func (a adaptServicePort) List(ctx context.Context, in salariesdom.ListInput) (salariesdom.ListResult, error) {
	return a.svc.List(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptServicePort) Get(ctx context.Context, in salariesdom.DetailInput) (salariesdom.OccupationDetail, error) {
	return a.svc.Get(ctx, in)
}

// Slugs exposes the sitemap feed
func (a adaptServicePort) Slugs(ctx context.Context, country string, limit int) ([]string, error) {
	return a.svc.Slugs(ctx, country, limit)
}
