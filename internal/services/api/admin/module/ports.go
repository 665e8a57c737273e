package module

import (
	"context"
	"io"

	admindom "salaryscope/internal/services/api/admin/domain"
	adminsvc "salaryscope/internal/services/api/admin/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the admin service to the domain port interface
type adaptServicePort struct{ svc adminsvc.Service }

var _ admindom.ServicePort = adaptServicePort{}

// ImportCSV implements the domain ServicePort interface
func (a adaptServicePort) ImportCSV(ctx context.Context, r io.Reader) (admindom.ImportResult, error) {
	return a.svc.ImportCSV(ctx, r)
}

// Create implements the domain ServicePort interface
func (a adaptServicePort) Create(ctx context.Context, in admindom.RecordInput) (admindom.Record, error) {
	return a.svc.Create(ctx, in)
}

// Update implements the domain ServicePort interface
func (a adaptServicePort) Update(ctx context.Context, id string, in admindom.RecordInput) (admindom.Record, error) {
	return a.svc.Update(ctx, id, in)
}

// Delete implements the domain ServicePort interface
func (a adaptServicePort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}
