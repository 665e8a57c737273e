// Package routing classifies salary-site URL paths. Everything under
// /{country}/ shares one catch-all route, so the 1..3 trailing segments have
// to be disambiguated against the geographic directory: a segment is either
// a state, a location, or an occupation slug, and geography always wins
package routing

// Kind tags what a resolved path points at
type Kind uint8

const (
	KindNotFound Kind = iota
	KindState
	KindCountryOccupation
	KindStateOccupation
	KindLocation
	KindLocationOccupation
)

var kindNames = map[Kind]string{
	KindNotFound:           "not_found",
	KindState:              "state",
	KindCountryOccupation:  "country_occupation",
	KindStateOccupation:    "state_occupation",
	KindLocation:           "location",
	KindLocationOccupation: "location_occupation",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsOccupation reports whether the resolved page is an occupation listing
func (k Kind) IsOccupation() bool {
	switch k {
	case KindCountryOccupation, KindStateOccupation, KindLocationOccupation:
		return true
	}
	return false
}
