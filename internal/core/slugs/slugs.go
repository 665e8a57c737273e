// Package slugs holds the URL slug conventions shared by routing, listings,
// and the sitemap: a slugify transform for matching geographic names against
// path segments, and a reversible escape for characters that occupation slugs
// may carry but URLs cannot
package slugs

import (
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Escape tokens for characters that are meaningful in occupation titles
// (C#, C++) but unsafe in a URL path segment
const (
	sharpToken = "-sharp"
	plusToken  = "-plus"
)

var titleCaser = cases.Title(language.English)

// Encode makes an occupation slug safe for use as a URL path segment
func Encode(s string) string {
	s = strings.ReplaceAll(s, "#", sharpToken)
	s = strings.ReplaceAll(s, "+", plusToken)
	return s
}

// Decode is the inverse of Encode. Apply exactly once per segment, after all
// geographic segments have been peeled off
func Decode(segment string) string {
	segment = strings.ReplaceAll(segment, sharpToken, "#")
	segment = strings.ReplaceAll(segment, plusToken, "+")
	return segment
}

// Normalize slugifies a display name or path segment for equality comparison.
// Both sides of a membership test go through this so that "New South Wales"
// and "new-south-wales" collide
func Normalize(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

// Make builds the canonical URL slug for a display name
func Make(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

// MakeOccupation builds the canonical occupation slug from a title. Plain
// slugification would strip the # and + that distinguish titles like
// "C# Developer", so those are escaped through the transform and restored:
// the stored slug keeps the literal characters, Encode escapes them again
// whenever the slug is placed in a URL
func MakeOccupation(title string) string {
	return Decode(slug.Make(Encode(title)))
}

// DisplayName denormalizes a URL segment into a human-readable candidate
// name, e.g. "new-south-wales" -> "New South Wales". It is a best-effort
// inverse of Make used when the data layer expects display names
func DisplayName(segment string) string {
	s := strings.ReplaceAll(strings.TrimSpace(segment), "-", " ")
	return titleCaser.String(s)
}
