package routing_test

import (
	"testing"

	"salaryscope/internal/core/routing"
)

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		res  routing.Resolution
		want string
	}{
		{
			routing.Resolution{Kind: routing.KindState, Country: "australia", State: "New South Wales"},
			"/australia/new-south-wales",
		},
		{
			routing.Resolution{Kind: routing.KindCountryOccupation, Country: "australia", OccupationSlug: "c#-developer"},
			"/australia/c-sharp-developer",
		},
		{
			routing.Resolution{
				Kind: routing.KindLocationOccupation, Country: "australia",
				State: "Victoria", Location: "Melbourne", OccupationSlug: "nurse",
			},
			"/australia/victoria/melbourne/nurse",
		},
	}
	for _, tc := range cases {
		if got := routing.CanonicalPath(tc.res); got != tc.want {
			t.Fatalf("CanonicalPath(%+v) = %q, want %q", tc.res, got, tc.want)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	res := routing.Resolution{
		Kind: routing.KindLocationOccupation, Country: "australia",
		State: "Victoria", Location: "Melbourne", OccupationSlug: "data-analyst#",
	}
	got := routing.Breadcrumbs(res)
	want := []routing.Crumb{
		{Label: "Australia", Path: "/australia"},
		{Label: "Victoria", Path: "/australia/victoria"},
		{Label: "Melbourne", Path: "/australia/victoria/melbourne"},
		{Label: "Data Analyst#", Path: "/australia/victoria/melbourne/data-analyst-sharp"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d crumbs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("crumb %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPageTitle(t *testing.T) {
	t.Parallel()

	occ := routing.Resolution{
		Kind: routing.KindStateOccupation, Country: "australia",
		State: "Victoria", OccupationSlug: "software-engineer",
	}
	if got := routing.PageTitle(occ); got != "Software Engineer Salary in Victoria, Australia" {
		t.Fatalf("title = %q", got)
	}

	geo := routing.Resolution{Kind: routing.KindState, Country: "australia", State: "Victoria"}
	if got := routing.PageTitle(geo); got != "Salaries in Victoria, Australia" {
		t.Fatalf("title = %q", got)
	}
}
