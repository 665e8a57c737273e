package slugs_test

import (
	"testing"

	"salaryscope/internal/core/slugs"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		encoded string
	}{
		{"software-engineer", "software-engineer"},
		{"c#-developer", "c-sharp-developer"},
		{"c++-developer", "c-plus-plus-developer"},
		{"data-analyst-#", "data-analyst--sharp"},
		{"", ""},
	}
	for _, tc := range cases {
		got := slugs.Encode(tc.in)
		if got != tc.encoded {
			t.Fatalf("Encode(%q) = %q, want %q", tc.in, got, tc.encoded)
		}
		back := slugs.Decode(got)
		if back != tc.in {
			t.Fatalf("Decode(Encode(%q)) = %q", tc.in, back)
		}
	}
}

func TestDecodeAppliedOnce(t *testing.T) {
	t.Parallel()

	// decoding is not idempotent by design; callers apply it exactly once
	if got := slugs.Decode("data-analyst-sharp"); got != "data-analyst#" {
		t.Fatalf("Decode = %q, want %q", got, "data-analyst#")
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		segment string
	}{
		{"New South Wales", "new-south-wales"},
		{"Victoria", "victoria"},
		{"Coffs Harbour", "coffs-harbour"},
	}
	for _, tc := range cases {
		if slugs.Normalize(tc.name) != slugs.Normalize(tc.segment) {
			t.Fatalf("Normalize(%q) != Normalize(%q)", tc.name, tc.segment)
		}
	}
}

func TestMakeOccupation(t *testing.T) {
	t.Parallel()

	cases := []struct{ title, want string }{
		{"Software Engineer", "software-engineer"},
		{"C# Developer", "c#-developer"},
		{"C++ Developer", "c++-developer"},
	}
	for _, tc := range cases {
		if got := slugs.MakeOccupation(tc.title); got != tc.want {
			t.Fatalf("MakeOccupation(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := slugs.DisplayName("new-south-wales"); got != "New South Wales" {
		t.Fatalf("DisplayName = %q", got)
	}
	if got := slugs.DisplayName("victoria"); got != "Victoria" {
		t.Fatalf("DisplayName = %q", got)
	}
}
