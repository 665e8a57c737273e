package routing_test

import (
	"context"
	"errors"
	"testing"

	"salaryscope/internal/core/routing"
)

// fakeGeo is an in-memory GeoDirectory with call counters
type fakeGeo struct {
	states        map[string][]string
	locations     map[string][]string // keyed country|state
	statesCalls   int
	locationCalls int
	err           error
}

func (f *fakeGeo) States(_ context.Context, country string) ([]string, error) {
	f.statesCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.states[country], nil
}

func (f *fakeGeo) Locations(_ context.Context, country, state string) ([]string, error) {
	f.locationCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.locations[country+"|"+state], nil
}

func newAustraliaGeo() *fakeGeo {
	return &fakeGeo{
		states: map[string][]string{
			"australia": {"New South Wales", "Victoria", "Queensland"},
		},
		locations: map[string][]string{
			"australia|Victoria":        {"Melbourne", "Geelong"},
			"australia|New South Wales": {"Sydney", "Coffs Harbour"},
		},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		segments []string
		want     routing.Resolution
	}{
		{
			name:     "state",
			segments: []string{"victoria"},
			want:     routing.Resolution{Kind: routing.KindState, Country: "australia", State: "Victoria"},
		},
		{
			name:     "country occupation",
			segments: []string{"software-engineer"},
			want: routing.Resolution{
				Kind: routing.KindCountryOccupation, Country: "australia",
				OccupationSlug: "software-engineer",
			},
		},
		{
			name:     "location",
			segments: []string{"victoria", "melbourne"},
			want: routing.Resolution{
				Kind: routing.KindLocation, Country: "australia",
				State: "Victoria", Location: "Melbourne",
			},
		},
		{
			name:     "state occupation with escaped slug",
			segments: []string{"victoria", "data-analyst-sharp"},
			want: routing.Resolution{
				Kind: routing.KindStateOccupation, Country: "australia",
				State: "Victoria", OccupationSlug: "data-analyst#",
			},
		},
		{
			name:     "location occupation",
			segments: []string{"victoria", "melbourne", "data-analyst-sharp"},
			want: routing.Resolution{
				Kind: routing.KindLocationOccupation, Country: "australia",
				State: "Victoria", Location: "Melbourne", OccupationSlug: "data-analyst#",
			},
		},
		{
			name:     "multi word state",
			segments: []string{"new-south-wales", "coffs-harbour"},
			want: routing.Resolution{
				Kind: routing.KindLocation, Country: "australia",
				State: "New South Wales", Location: "Coffs Harbour",
			},
		},
		{
			name:     "no segments",
			segments: nil,
			want:     routing.Resolution{Kind: routing.KindNotFound, Country: "australia"},
		},
		{
			name:     "too many segments",
			segments: []string{"a", "b", "c", "d"},
			want:     routing.Resolution{Kind: routing.KindNotFound, Country: "australia"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rv := routing.NewResolver(newAustraliaGeo())
			got, err := rv.Resolve(context.Background(), "Australia", tc.segments)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveDepthThreeSkipsDirectory(t *testing.T) {
	t.Parallel()

	geo := newAustraliaGeo()
	rv := routing.NewResolver(geo)

	got, err := rv.Resolve(context.Background(), "australia",
		[]string{"victoria", "melbourne", "nurse"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != routing.KindLocationOccupation {
		t.Fatalf("kind = %v", got.Kind)
	}
	if geo.statesCalls != 0 || geo.locationCalls != 0 {
		t.Fatalf("directory probed at depth 3: states=%d locations=%d",
			geo.statesCalls, geo.locationCalls)
	}
}

func TestResolveUnknownStateFallsThrough(t *testing.T) {
	t.Parallel()

	rv := routing.NewResolver(newAustraliaGeo())
	got, err := rv.Resolve(context.Background(), "australia",
		[]string{"atlantis", "nurse"})
	if err != nil {
		t.Fatal(err)
	}
	// the phantom state sticks; the page renders as an empty listing
	want := routing.Resolution{
		Kind: routing.KindStateOccupation, Country: "australia",
		State: "Atlantis", OccupationSlug: "nurse",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestResolvePropagatesDirectoryError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	rv := routing.NewResolver(&fakeGeo{err: boom})
	if _, err := rv.Resolve(context.Background(), "australia", []string{"victoria"}); !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
}
