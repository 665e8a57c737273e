package module

import (
	"context"

	geodom "salaryscope/internal/services/api/geo/domain"
	geosvc "salaryscope/internal/services/api/geo/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptDirectoryPort adapts the geo service to the domain port interface
type adaptDirectoryPort struct{ svc geosvc.Service }

var _ geodom.DirectoryPort = adaptDirectoryPort{}

// Countries implements the domain DirectoryPort interface
func (a adaptDirectoryPort) Countries(ctx context.Context) ([]string, error) {
	return a.svc.Countries(ctx)
}

// States implements the domain DirectoryPort interface
func (a adaptDirectoryPort) States(ctx context.Context, country string) ([]string, error) {
	return a.svc.States(ctx, country)
}

// Locations implements the domain DirectoryPort interface
func (a adaptDirectoryPort) Locations(ctx context.Context, country, state string) ([]string, error) {
	return a.svc.Locations(ctx, country, state)
}
