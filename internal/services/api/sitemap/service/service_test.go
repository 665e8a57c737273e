package service_test

import (
	"context"
	"strings"
	"testing"

	svc "salaryscope/internal/services/api/sitemap/service"
)

type fakeGeo struct{}

func (fakeGeo) Countries(context.Context) ([]string, error) { return []string{"australia"}, nil }

func (fakeGeo) States(context.Context, string) ([]string, error) {
	return []string{"Victoria"}, nil
}

func (fakeGeo) Locations(context.Context, string, string) ([]string, error) {
	return []string{"Melbourne"}, nil
}

type fakeSlugs struct{}

func (fakeSlugs) Slugs(_ context.Context, _ string, limit int) ([]string, error) {
	out := []string{"nurse", "c#-developer"}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func TestBuild(t *testing.T) {
	t.Parallel()

	s := svc.New(fakeGeo{}, fakeSlugs{}, "https://example.com/", 100)
	set, err := s.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"https://example.com/australia",
		"https://example.com/australia/victoria",
		"https://example.com/australia/victoria/melbourne",
		"https://example.com/australia/nurse",
		"https://example.com/australia/c-sharp-developer",
	}
	if len(set.URLs) != len(want) {
		t.Fatalf("got %d urls, want %d", len(set.URLs), len(want))
	}
	for i, w := range want {
		if set.URLs[i].Loc != w {
			t.Fatalf("url %d = %q, want %q", i, set.URLs[i].Loc, w)
		}
	}
}

func TestXML(t *testing.T) {
	t.Parallel()

	s := svc.New(fakeGeo{}, fakeSlugs{}, "https://example.com", 1)
	body, err := s.XML(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	out := string(body)
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("missing xml header: %q", out[:20])
	}
	if !strings.Contains(out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Fatal("missing urlset root")
	}
	if !strings.Contains(out, "<loc>https://example.com/australia/nurse</loc>") {
		t.Fatal("missing occupation url")
	}
	if strings.Contains(out, "c-sharp-developer") {
		t.Fatal("occupation bound not applied")
	}
}
