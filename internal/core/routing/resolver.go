package routing

import (
	"context"
	"strings"

	"salaryscope/internal/core/slugs"
)

// GeoDirectory is the lookup surface the resolver needs from the data layer.
// Both calls return display names
type GeoDirectory interface {
	States(ctx context.Context, country string) ([]string, error)
	Locations(ctx context.Context, country, state string) ([]string, error)
}

// Resolution is the classified form of a path. Geographic fields hold
// display names; OccupationSlug is fully decoded and set only for the
// occupation kinds
type Resolution struct {
	Kind           Kind
	Country        string
	State          string
	Location       string
	OccupationSlug string
}

// Resolver disambiguates path segments against a GeoDirectory
type Resolver struct {
	geo GeoDirectory
}

// NewResolver builds a Resolver over the given directory
func NewResolver(geo GeoDirectory) *Resolver {
	return &Resolver{geo: geo}
}

// Resolve classifies the trailing segments of /{country}/... . Segments
// arrive raw from the URL; each is slug-decoded at most once, at the point
// it is committed to being an occupation
func (rv *Resolver) Resolve(ctx context.Context, country string, segments []string) (Resolution, error) {
	country = strings.ToLower(strings.TrimSpace(country))

	switch len(segments) {
	case 1:
		states, err := rv.geo.States(ctx, country)
		if err != nil {
			return Resolution{}, err
		}
		if name, ok := matchName(states, segments[0]); ok {
			return Resolution{Kind: KindState, Country: country, State: name}, nil
		}
		return Resolution{
			Kind:           KindCountryOccupation,
			Country:        country,
			OccupationSlug: slugs.Decode(segments[0]),
		}, nil

	case 2:
		// the first segment is taken as a state on faith; if it names no
		// real state the locations lookup comes back empty and the second
		// segment falls through to an occupation under that phantom state,
		// which renders as an empty listing rather than an error
		state := slugs.DisplayName(segments[0])
		locations, err := rv.geo.Locations(ctx, country, state)
		if err != nil {
			return Resolution{}, err
		}
		if name, ok := matchName(locations, segments[1]); ok {
			return Resolution{Kind: KindLocation, Country: country, State: state, Location: name}, nil
		}
		return Resolution{
			Kind:           KindStateOccupation,
			Country:        country,
			State:          state,
			OccupationSlug: slugs.Decode(segments[1]),
		}, nil

	case 3:
		// three segments can only mean state/location/occupation; no
		// directory probe happens at this depth
		return Resolution{
			Kind:           KindLocationOccupation,
			Country:        country,
			State:          slugs.DisplayName(segments[0]),
			Location:       slugs.DisplayName(segments[1]),
			OccupationSlug: slugs.Decode(segments[2]),
		}, nil

	default:
		return Resolution{Kind: KindNotFound, Country: country}, nil
	}
}

// matchName finds the display name whose slug equals the segment's slug
func matchName(names []string, segment string) (string, bool) {
	want := slugs.Normalize(segment)
	for _, n := range names {
		if slugs.Normalize(n) == want {
			return n, true
		}
	}
	return "", false
}
