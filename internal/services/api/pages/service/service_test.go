package service_test

import (
	"context"
	"testing"
	"time"

	perr "salaryscope/internal/platform/errors"
	svc "salaryscope/internal/services/api/pages/service"
	salariesdom "salaryscope/internal/services/api/salaries/domain"
	viewsdom "salaryscope/internal/services/pageviews/domain"
)

type fakeGeo struct{}

func (fakeGeo) States(context.Context, string) ([]string, error) {
	return []string{"Victoria", "New South Wales"}, nil
}

func (fakeGeo) Locations(_ context.Context, _ string, state string) ([]string, error) {
	if state == "Victoria" {
		return []string{"Melbourne", "Geelong"}, nil
	}
	return nil, nil
}

type fakeSalaries struct {
	lastList   salariesdom.ListInput
	lastDetail salariesdom.DetailInput
}

func (f *fakeSalaries) List(_ context.Context, in salariesdom.ListInput) (salariesdom.ListResult, error) {
	f.lastList = in
	return salariesdom.ListResult{
		Items:    []salariesdom.OccupationSummary{{Slug: "nurse", Title: "Nurse"}},
		Page:     max(in.Page, 1),
		PageSize: 50,
		HasNext:  false,
	}, nil
}

func (f *fakeSalaries) Get(_ context.Context, in salariesdom.DetailInput) (salariesdom.OccupationDetail, error) {
	f.lastDetail = in
	if in.Slug == "ghost-job" {
		return salariesdom.OccupationDetail{}, perr.ErrNotFound
	}
	return salariesdom.OccupationDetail{Slug: in.Slug, Title: "Job", Country: in.Country}, nil
}

type fakeEmitter struct{ views chan viewsdom.View }

func (f *fakeEmitter) Emit(_ context.Context, v viewsdom.View) error {
	f.views <- v
	return nil
}

func newSvc() (*svc.Svc, *fakeSalaries, *fakeEmitter) {
	sal := &fakeSalaries{}
	em := &fakeEmitter{views: make(chan viewsdom.View, 4)}
	return svc.New(fakeGeo{}, sal, em), sal, em
}

func awaitView(t *testing.T, em *fakeEmitter) viewsdom.View {
	t.Helper()
	select {
	case v := <-em.views:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no pageview recorded")
		return viewsdom.View{}
	}
}

func TestResolveStateListing(t *testing.T) {
	t.Parallel()

	s, sal, em := newSvc()
	p, err := s.Resolve(context.Background(), "australia", []string{"victoria"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "state" || p.Listing == nil || p.Occupation != nil {
		t.Fatalf("got %+v", p)
	}
	if p.Canonical != "/australia/victoria" {
		t.Fatalf("canonical = %q", p.Canonical)
	}
	if sal.lastList.State != "Victoria" || sal.lastList.Page != 2 {
		t.Fatalf("listing input %+v", sal.lastList)
	}

	v := awaitView(t, em)
	if v.Path != "/australia/victoria" || v.Kind != "state" {
		t.Fatalf("view %+v", v)
	}
}

func TestResolveOccupationDetail(t *testing.T) {
	t.Parallel()

	s, sal, _ := newSvc()
	p, err := s.Resolve(context.Background(), "australia",
		[]string{"victoria", "melbourne", "data-analyst-sharp"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "location_occupation" || p.Occupation == nil || p.Listing != nil {
		t.Fatalf("got %+v", p)
	}
	if sal.lastDetail.Slug != "data-analyst#" || sal.lastDetail.Location != "Melbourne" {
		t.Fatalf("detail input %+v", sal.lastDetail)
	}
	if len(p.Breadcrumbs) != 4 {
		t.Fatalf("breadcrumbs %+v", p.Breadcrumbs)
	}
}

func TestResolveCountryOccupation(t *testing.T) {
	t.Parallel()

	s, sal, _ := newSvc()
	p, err := s.Resolve(context.Background(), "australia", []string{"software-engineer"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "country_occupation" {
		t.Fatalf("kind = %q", p.Kind)
	}
	if sal.lastDetail.Slug != "software-engineer" || sal.lastDetail.State != "" {
		t.Fatalf("detail input %+v", sal.lastDetail)
	}
}

func TestResolveMisses(t *testing.T) {
	t.Parallel()

	s, _, _ := newSvc()

	// zero segments is not a page
	if _, err := s.Resolve(context.Background(), "australia", nil, 0); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("empty path: %v", err)
	}

	// occupation lookups that miss surface the data layer's not found
	if _, err := s.Resolve(context.Background(), "australia", []string{"ghost-job"}, 0); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("ghost occupation: %v", err)
	}
}
