package service_test

import (
	"context"
	"strings"
	"testing"

	"salaryscope/internal/core/paging"
	"salaryscope/internal/modkit/repokit"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/services/api/admin/domain"
	"salaryscope/internal/services/api/admin/repo"
	svc "salaryscope/internal/services/api/admin/service"
)

type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeDB) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(fakeDB{}) }

type fakeRepo struct {
	inserted []repo.Row
	byID     map[string]repo.Row
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[string]repo.Row{}} }

func (f *fakeRepo) Insert(_ context.Context, row repo.Row) error {
	f.inserted = append(f.inserted, row)
	row.CreatedAt = "2026-08-01"
	row.UpdatedAt = "2026-08-01"
	f.byID[row.ID] = row
	return nil
}

func (f *fakeRepo) Update(_ context.Context, row repo.Row) error {
	if _, ok := f.byID[row.ID]; !ok {
		return perr.NotFoundf("record %s not found", row.ID)
	}
	f.byID[row.ID] = row
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (string, error) {
	row, ok := f.byID[id]
	if !ok {
		return "", perr.NotFoundf("record %s not found", id)
	}
	delete(f.byID, id)
	return row.Country, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (repo.Row, error) {
	row, ok := f.byID[id]
	if !ok {
		return repo.Row{}, perr.NotFoundf("record %s not found", id)
	}
	return row, nil
}

func newSvc() (*svc.Svc, *fakeRepo, *paging.Registry) {
	f := newFakeRepo()
	reg := paging.NewRegistry()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return svc.New(fakeDB{}, binder, reg), f, reg
}

const sampleCSV = `country,state,location,occupation_title,amount,currency,period,company
australia,Victoria,Melbourne,Software Engineer,115000,AUD,year,Acme
australia,Victoria,,Nurse,85000,AUD,year,
australia,,,C# Developer,not-a-number,AUD,year,
new zealand,,,Data Analyst,90000,nzd,year,
australia,,,Teacher,78000,AUD,year,
`

func TestImportCSV(t *testing.T) {
	t.Parallel()

	s, f, reg := newSvc()
	reg.RememberNextCursor(paging.Scope{Country: "australia", Limit: 50}, 1, "stale")

	out, err := s.ImportCSV(context.Background(), strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	// bad amount and lowercase currency rows skipped
	if out.Imported != 3 || out.Skipped != 2 {
		t.Fatalf("got %+v", out)
	}
	if len(out.Errors) != 2 {
		t.Fatalf("errors %v", out.Errors)
	}
	if len(f.inserted) != 3 {
		t.Fatalf("inserted %d rows", len(f.inserted))
	}
	if f.inserted[0].OccupationSlug != "software-engineer" || f.inserted[0].Country != "australia" {
		t.Fatalf("row %+v", f.inserted[0])
	}

	// a bulk import drops every memoized cursor
	if reg.Len() != 0 {
		t.Fatalf("registry holds %d entries after import", reg.Len())
	}
}

func TestImportCSVRejectsMissingColumns(t *testing.T) {
	t.Parallel()

	s, _, _ := newSvc()
	_, err := s.ImportCSV(context.Background(), strings.NewReader("country,amount\naustralia,100\n"))
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("got %v", err)
	}
}

func TestCreateInvalidatesNarrowly(t *testing.T) {
	t.Parallel()

	s, _, reg := newSvc()
	au := paging.Scope{Country: "australia", Limit: 50}
	nz := paging.Scope{Country: "new zealand", Limit: 50}
	reg.RememberNextCursor(au, 1, "a")
	reg.RememberNextCursor(nz, 1, "b")

	rec, err := s.Create(context.Background(), domain.RecordInput{
		Country:         "Australia",
		OccupationTitle: "C# Developer",
		Amount:          120000,
		Currency:        "AUD",
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.OccupationSlug != "c#-developer" || rec.Country != "australia" || rec.Period != "year" {
		t.Fatalf("got %+v", rec)
	}
	// only the mutated country's cursors are dropped
	if reg.Len() != 1 {
		t.Fatalf("registry len = %d, want 1", reg.Len())
	}
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()

	s, _, _ := newSvc()
	rec, err := s.Create(context.Background(), domain.RecordInput{
		Country: "australia", OccupationTitle: "Nurse", Amount: 85000, Currency: "AUD",
	})
	if err != nil {
		t.Fatal(err)
	}

	upd, err := s.Update(context.Background(), rec.ID, domain.RecordInput{
		Country: "australia", OccupationTitle: "Senior Nurse", Amount: 95000, Currency: "AUD",
	})
	if err != nil {
		t.Fatal(err)
	}
	if upd.OccupationSlug != "senior-nurse" {
		t.Fatalf("got %+v", upd)
	}

	if err := s.Delete(context.Background(), rec.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(context.Background(), rec.ID); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("second delete: %v", err)
	}

	if err := s.Delete(context.Background(), "not-a-uuid"); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("bad id: %v", err)
	}
}
