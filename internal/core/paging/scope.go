// Package paging implements forward-only keyset pagination with a
// process-wide cursor registry. Listing pages expose classic page numbers to
// the outside while the data layer only understands opaque cursors; the
// registry memoizes the page->cursor mapping per listing scope so that
// landing on page N does not refetch pages already walked
package paging

import (
	"strconv"
	"strings"
)

// Scope identifies one logical listing: the same scope always produces the
// same ordered result set, so its cursors are safe to reuse across requests
type Scope struct {
	Country      string
	State        string
	Location     string
	SearchQuery  string
	LetterFilter string
	Limit        int
}

const keySep = "\x1f"

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (s Scope) normalized() Scope {
	s.Country = norm(s.Country)
	s.State = norm(s.State)
	s.Location = norm(s.Location)
	s.SearchQuery = norm(s.SearchQuery)
	s.LetterFilter = norm(s.LetterFilter)
	return s
}

// Key renders the scope as a registry key. Two scopes that differ only in
// case or surrounding whitespace share a key
func (s Scope) Key() string {
	n := s.normalized()
	return strings.Join([]string{
		n.Country, n.State, n.Location, n.SearchQuery, n.LetterFilter,
		strconv.Itoa(s.Limit),
	}, keySep)
}

// matches reports whether every field set on the filter agrees with the
// (already normalized) scope. Zero-valued filter fields match anything
func (s Scope) matches(f Scope) bool {
	n := f.normalized()
	if n.Country != "" && n.Country != s.Country {
		return false
	}
	if n.State != "" && n.State != s.State {
		return false
	}
	if n.Location != "" && n.Location != s.Location {
		return false
	}
	if n.SearchQuery != "" && n.SearchQuery != s.SearchQuery {
		return false
	}
	if n.LetterFilter != "" && n.LetterFilter != s.LetterFilter {
		return false
	}
	if f.Limit > 0 && f.Limit != s.Limit {
		return false
	}
	return true
}
