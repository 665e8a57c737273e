package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "salaryscope/internal/platform/net/http"
	"salaryscope/internal/services/api/pages/domain"
	pageshttp "salaryscope/internal/services/api/pages/http"
)

type fakeSvc struct {
	country  string
	segments []string
	page     int
}

func (f *fakeSvc) Resolve(_ context.Context, country string, segments []string, page int) (domain.Payload, error) {
	f.country, f.segments, f.page = country, segments, page
	return domain.Payload{Kind: "state", Country: country}, nil
}

func TestResolveRouteSplitsSegments(t *testing.T) {
	t.Parallel()

	f := &fakeSvc{}
	mux := chi.NewMux()
	pageshttp.Register(phttp.AdaptChi(mux), f)

	cases := []struct {
		path     string
		country  string
		segments []string
		page     int
	}{
		{"/australia/victoria?page=3", "australia", []string{"victoria"}, 3},
		{"/australia/victoria/melbourne/data-analyst-sharp", "australia", []string{"victoria", "melbourne", "data-analyst-sharp"}, 0},
		{"/australia", "australia", nil, 0},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", tc.path, nil))
		if rec.Code != 200 {
			t.Fatalf("%s: code %d", tc.path, rec.Code)
		}
		if f.country != tc.country || !reflect.DeepEqual(f.segments, tc.segments) || f.page != tc.page {
			t.Fatalf("%s: got country=%q segments=%v page=%d", tc.path, f.country, f.segments, f.page)
		}

		var env phttp.Envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatal(err)
		}
		if env.StatusCode != 200 || env.Data == nil {
			t.Fatalf("%s: envelope %+v", tc.path, env)
		}
	}
}

func TestResolveRouteRejectsBadPage(t *testing.T) {
	t.Parallel()

	mux := chi.NewMux()
	pageshttp.Register(phttp.AdaptChi(mux), &fakeSvc{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/australia/victoria?page=abc", nil))
	if rec.Code != 400 {
		t.Fatalf("code %d, want 400", rec.Code)
	}
}
