package repo

import "testing"

func TestLikeEscape(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"engineer", "engineer"},
		{"100%", `100\%`},
		{"data_analyst", `data\_analyst`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := likeEscape(tc.in); got != tc.want {
			t.Fatalf("likeEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
