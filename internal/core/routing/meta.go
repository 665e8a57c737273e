package routing

import (
	"strings"

	"salaryscope/internal/core/slugs"
)

// Crumb is one breadcrumb entry
type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// CanonicalPath rebuilds the canonical URL path for a resolution. Geographic
// names are slugified, the occupation slug is re-encoded, so a request that
// arrived with odd casing still advertises one canonical form
func CanonicalPath(res Resolution) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(slugs.Make(res.Country))
	if res.State != "" {
		b.WriteString("/")
		b.WriteString(slugs.Make(res.State))
	}
	if res.Location != "" {
		b.WriteString("/")
		b.WriteString(slugs.Make(res.Location))
	}
	if res.OccupationSlug != "" {
		b.WriteString("/")
		b.WriteString(slugs.Encode(res.OccupationSlug))
	}
	return b.String()
}

// Breadcrumbs walks a resolution outward-in: country, then state, then
// location, then the occupation leaf
func Breadcrumbs(res Resolution) []Crumb {
	countryLabel := slugs.DisplayName(res.Country)
	crumbs := []Crumb{{Label: countryLabel, Path: "/" + slugs.Make(res.Country)}}

	path := "/" + slugs.Make(res.Country)
	if res.State != "" {
		path += "/" + slugs.Make(res.State)
		crumbs = append(crumbs, Crumb{Label: res.State, Path: path})
	}
	if res.Location != "" {
		path += "/" + slugs.Make(res.Location)
		crumbs = append(crumbs, Crumb{Label: res.Location, Path: path})
	}
	if res.OccupationSlug != "" {
		path += "/" + slugs.Encode(res.OccupationSlug)
		crumbs = append(crumbs, Crumb{Label: occupationLabel(res.OccupationSlug), Path: path})
	}
	return crumbs
}

// PageTitle renders the SEO title for a resolved page
func PageTitle(res Resolution) string {
	place := placeName(res)
	switch {
	case res.Kind == KindNotFound:
		return "Page Not Found"
	case res.Kind.IsOccupation():
		return occupationLabel(res.OccupationSlug) + " Salary in " + place
	default:
		return "Salaries in " + place
	}
}

// PageDescription renders the SEO meta description for a resolved page
func PageDescription(res Resolution) string {
	place := placeName(res)
	if res.Kind.IsOccupation() {
		return "Average " + occupationLabel(res.OccupationSlug) + " salary in " + place +
			", with pay ranges reported by employers and employees."
	}
	return "Browse salaries by occupation in " + place + "."
}

func placeName(res Resolution) string {
	parts := make([]string, 0, 3)
	if res.Location != "" {
		parts = append(parts, res.Location)
	}
	if res.State != "" {
		parts = append(parts, res.State)
	}
	parts = append(parts, slugs.DisplayName(res.Country))
	return strings.Join(parts, ", ")
}

// occupationLabel titles a decoded occupation slug, keeping literal # and +
// intact: "c#-developer" becomes "C# Developer"
func occupationLabel(occSlug string) string {
	return slugs.DisplayName(occSlug)
}
