package service_test

import (
	"context"
	"testing"
	"time"

	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/platform/store"
	"salaryscope/internal/services/pageviews/domain"
	svc "salaryscope/internal/services/pageviews/service"
)

type fakeCH struct {
	table string
	rows  [][]any
	data  []domain.PopularRow
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table = table
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) {
	return &fakeRows{data: f.data, i: -1}, nil
}

func (f *fakeCH) Close() error { return nil }

type fakeRows struct {
	data []domain.PopularRow
	i    int
}

func (r *fakeRows) Next() bool {
	r.i++
	return r.i < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.data[r.i].Path
	*dest[1].(*uint64) = r.data[r.i].Views
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"path", "views"} }

func TestEmit(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{}
	s := svc.New(ch)
	err := s.Emit(context.Background(), domain.View{
		Path:    "/australia/victoria",
		Country: "Australia",
		Kind:    "state",
	})
	if err != nil {
		t.Fatal(err)
	}
	if ch.table != svc.Table || len(ch.rows) != 1 {
		t.Fatalf("table %q rows %d", ch.table, len(ch.rows))
	}
	row := ch.rows[0]
	if row[1] != "australia" || row[2] != "state" {
		t.Fatalf("row %v", row)
	}
	if ts, ok := row[3].(time.Time); !ok || ts.IsZero() {
		t.Fatalf("timestamp %v", row[3])
	}
}

func TestEmitWithoutClickhouseIsNoop(t *testing.T) {
	t.Parallel()

	s := svc.New(nil)
	if err := s.Emit(context.Background(), domain.View{Path: "/x"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Popular(context.Background(), "australia", 7, 5); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("got %v, want unavailable", err)
	}
}

func TestPopular(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{data: []domain.PopularRow{
		{Path: "/australia/nurse", Views: 40},
		{Path: "/australia/victoria", Views: 12},
	}}
	s := svc.New(ch)
	out, err := s.Popular(context.Background(), "australia", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Path != "/australia/nurse" || out[0].Views != 40 {
		t.Fatalf("got %+v", out)
	}
}
