package module

import (
	"context"

	viewsdom "salaryscope/internal/services/pageviews/domain"
	viewssvc "salaryscope/internal/services/pageviews/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptPorts adapts the pageviews service to its domain ports
type adaptPorts struct{ svc viewssvc.Service }

var (
	_ viewsdom.EmitterPort = adaptPorts{}
	_ viewsdom.ReaderPort  = adaptPorts{}
)

// Emit implements the domain EmitterPort interface
func (a adaptPorts) Emit(ctx context.Context, v viewsdom.View) error {
	return a.svc.Emit(ctx, v)
}

// Popular implements the domain ReaderPort interface
func (a adaptPorts) Popular(ctx context.Context, country string, days, limit int) ([]viewsdom.PopularRow, error) {
	return a.svc.Popular(ctx, country, days, limit)
}
