package module

import (
	"context"

	pagesdom "salaryscope/internal/services/api/pages/domain"
	pagessvc "salaryscope/internal/services/api/pages/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the pages service to the domain port interface
type adaptServicePort struct{ svc pagessvc.Service }

var _ pagesdom.ServicePort = adaptServicePort{}

// Resolve implements the domain ServicePort interface
func (a adaptServicePort) Resolve(ctx context.Context, country string, segments []string, page int) (pagesdom.Payload, error) {
	return a.svc.Resolve(ctx, country, segments, page)
}
