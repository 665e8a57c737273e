// Package http provides the admin record endpoints
package http

import (
	stdhttp "net/http"

	"salaryscope/internal/modkit/httpkit"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/services/api/admin/domain"
	svc "salaryscope/internal/services/api/admin/service"
)

// maxImportBytes caps an uploaded CSV at 32 MiB
const maxImportBytes = 32 << 20

// Register mounts admin endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/import", h.importCSV)
	httpkit.PostJSON[domain.RecordInput](r, "/records", h.create)
	httpkit.PutJSON[domain.RecordInput](r, "/records/{id}", h.update)
	httpkit.Delete(r, "/records/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func (h *handlers) importCSV(r *stdhttp.Request) (any, error) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		return nil, perr.InvalidArgf("multipart form: %v", err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, perr.InvalidArgf("multipart field %q is required", "file")
	}
	defer f.Close()
	return h.svc.ImportCSV(r.Context(), f)
}

func (h *handlers) create(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(rec), nil
}

func (h *handlers) update(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.Param(r, "id"), in)
}

func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
