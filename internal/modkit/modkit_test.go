package modkit_test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "salaryscope/internal/modkit"
	phttp "salaryscope/internal/platform/net/http"
	adminmod "salaryscope/internal/services/api/admin/module"
	geomod "salaryscope/internal/services/api/geo/module"
	metamod "salaryscope/internal/services/api/meta/module"
	pagesmod "salaryscope/internal/services/api/pages/module"
	salariesmod "salaryscope/internal/services/api/salaries/module"
	viewsmod "salaryscope/internal/services/pageviews/module"
)

// every service module constructor follows the Builder shape and returns a
// value on the Module surface
var builders = map[string]modkit.Builder{
	"admin":     adminmod.New,
	"geo":       geomod.New,
	"meta":      metamod.New,
	"pages":     pagesmod.New,
	"salaries":  salariesmod.New,
	"pageviews": viewsmod.New,
}

func TestBuildersAreWired(t *testing.T) {
	t.Parallel()

	for name, b := range builders {
		if b == nil {
			t.Fatalf("%s builder is nil", name)
		}
	}
}

func TestMetaModuleSurface(t *testing.T) {
	t.Parallel()

	var m modkit.Module = metamod.New(modkit.Deps{})
	if m.Name() != "meta" {
		t.Fatalf("name = %q", m.Name())
	}
	if m.Ports() != nil {
		t.Fatalf("meta exposes ports %v", m.Ports())
	}

	mux := chi.NewMux()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/meta/health", nil))
	if rec.Code != 200 {
		t.Fatalf("health code %d", rec.Code)
	}
}
