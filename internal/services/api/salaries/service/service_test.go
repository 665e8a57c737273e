package service_test

import (
	"context"
	"fmt"
	"testing"

	"salaryscope/internal/core/paging"
	"salaryscope/internal/modkit/repokit"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/services/api/salaries/domain"
	"salaryscope/internal/services/api/salaries/repo"
	svc "salaryscope/internal/services/api/salaries/service"
)

// fakeDB satisfies repokit.TxRunner; the fake repo never touches it
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeDB) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(fakeDB{}) }

// fakeRepo serves a fixed ordered slug set with keyset semantics
type fakeRepo struct {
	slugs     []string
	listCalls int
}

func (f *fakeRepo) ListOccupations(_ context.Context, _ repo.Filter, cursor string, limit int) ([]repo.OccupationRow, string, error) {
	f.listCalls++
	start := 0
	for i, s := range f.slugs {
		if s <= cursor {
			start = i + 1
		}
	}
	end := start + limit
	if end > len(f.slugs) {
		end = len(f.slugs)
	}
	var rows []repo.OccupationRow
	for _, s := range f.slugs[start:end] {
		rows = append(rows, repo.OccupationRow{Slug: s, Title: s, AvgSalary: 100000, Currency: "AUD", Records: 3})
	}
	next := ""
	if end < len(f.slugs) {
		next = f.slugs[end-1]
	}
	return rows, next, nil
}

func (f *fakeRepo) GetOccupation(_ context.Context, _ repo.Filter, slug string) (repo.DetailRow, error) {
	for _, s := range f.slugs {
		if s == slug {
			return repo.DetailRow{Slug: s, Title: s, AvgSalary: 100000, MinSalary: 80000, MaxSalary: 120000, Currency: "AUD", Records: 3}, nil
		}
	}
	return repo.DetailRow{}, perr.ErrNotFound
}

func (f *fakeRepo) Slugs(_ context.Context, _ string, limit int) ([]string, error) {
	if limit > len(f.slugs) {
		limit = len(f.slugs)
	}
	return f.slugs[:limit], nil
}

func newSvc(n int) (*svc.Svc, *fakeRepo) {
	f := &fakeRepo{}
	for i := 0; i < n; i++ {
		f.slugs = append(f.slugs, fmt.Sprintf("occ-%03d", i))
	}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return svc.New(fakeDB{}, binder, paging.NewRegistry()), f
}

func TestListFirstPage(t *testing.T) {
	t.Parallel()

	s, f := newSvc(12)
	out, err := s.List(context.Background(), domain.ListInput{Country: "australia", Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Items) != 5 || out.Page != 1 || !out.HasNext {
		t.Fatalf("got %+v", out)
	}
	if out.Items[0].Slug != "occ-000" {
		t.Fatalf("first item %q", out.Items[0].Slug)
	}
	// page 1 needs exactly the one page fetch, no cursor walk
	if f.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1", f.listCalls)
	}
}

func TestListDeepPageMemoizes(t *testing.T) {
	t.Parallel()

	s, f := newSvc(25)
	in := domain.ListInput{Country: "australia", Page: 3, Limit: 5}

	out, err := s.List(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if out.Items[0].Slug != "occ-010" || !out.HasNext {
		t.Fatalf("got %+v", out)
	}
	// two walk fetches plus the page itself
	if f.listCalls != 3 {
		t.Fatalf("listCalls = %d, want 3", f.listCalls)
	}

	f.listCalls = 0
	if _, err := s.List(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	// the walk rides memoized cursors now
	if f.listCalls != 1 {
		t.Fatalf("second listCalls = %d, want 1", f.listCalls)
	}
}

func TestListPastEndIsNotFound(t *testing.T) {
	t.Parallel()

	s, _ := newSvc(8)
	_, err := s.List(context.Background(), domain.ListInput{Country: "australia", Page: 5, Limit: 5})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestListValidatesFilters(t *testing.T) {
	t.Parallel()

	s, _ := newSvc(3)
	_, err := s.List(context.Background(), domain.ListInput{Country: "australia", Letter: "ab"})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("letter: got %v", err)
	}

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	_, err = s.List(context.Background(), domain.ListInput{Country: "australia", Query: string(long)})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("query: got %v", err)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	s, _ := newSvc(3)
	out, err := s.Get(context.Background(), domain.DetailInput{Country: "australia", Slug: "occ-001"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Slug != "occ-001" || out.Country != "australia" {
		t.Fatalf("got %+v", out)
	}

	_, err = s.Get(context.Background(), domain.DetailInput{Country: "australia", Slug: "missing"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}
