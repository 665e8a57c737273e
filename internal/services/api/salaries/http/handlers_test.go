package http_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "salaryscope/internal/platform/net/http"
	"salaryscope/internal/services/api/salaries/domain"
	salarieshttp "salaryscope/internal/services/api/salaries/http"
)

type fakeSvc struct {
	lastList   domain.ListInput
	lastDetail domain.DetailInput
}

func (f *fakeSvc) List(_ context.Context, in domain.ListInput) (domain.ListResult, error) {
	f.lastList = in
	return domain.ListResult{Page: max(in.Page, 1), PageSize: domain.DefaultPageSize}, nil
}

func (f *fakeSvc) Get(_ context.Context, in domain.DetailInput) (domain.OccupationDetail, error) {
	f.lastDetail = in
	return domain.OccupationDetail{Slug: in.Slug, Country: in.Country}, nil
}

func (f *fakeSvc) Slugs(context.Context, string, int) ([]string, error) { return nil, nil }

func newMux(f *fakeSvc) *chi.Mux {
	mux := chi.NewMux()
	salarieshttp.Register(phttp.AdaptChi(mux), f)
	return mux
}

func TestListParsesScopeAndPage(t *testing.T) {
	t.Parallel()

	f := &fakeSvc{}
	mux := newMux(f)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/australia/new-south-wales?page=2&letter=n", nil))
	if rec.Code != 200 {
		t.Fatalf("code %d", rec.Code)
	}
	if f.lastList.Country != "australia" || f.lastList.State != "New South Wales" {
		t.Fatalf("scope %+v", f.lastList)
	}
	if f.lastList.Page != 2 || f.lastList.Letter != "n" {
		t.Fatalf("filters %+v", f.lastList)
	}
}

func TestListRejectsBadPage(t *testing.T) {
	t.Parallel()

	mux := newMux(&fakeSvc{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/australia?page=two", nil))
	if rec.Code != 400 {
		t.Fatalf("code %d, want 400", rec.Code)
	}
}

func TestDetailDecodesSlug(t *testing.T) {
	t.Parallel()

	f := &fakeSvc{}
	mux := newMux(f)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/australia/occupations/c-sharp-developer?state=Victoria", nil))
	if rec.Code != 200 {
		t.Fatalf("code %d", rec.Code)
	}
	if f.lastDetail.Slug != "c#-developer" || f.lastDetail.State != "Victoria" {
		t.Fatalf("detail input %+v", f.lastDetail)
	}
}
