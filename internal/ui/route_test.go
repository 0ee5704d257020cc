package ui

import "testing"

func TestParseRoute(t *testing.T) {
	cases := []struct {
		in   string
		want Route
	}{
		{"", ListRoute},
		{"/", ListRoute},
		{" / ", ListRoute},
		{"/books/1", DetailRoute(1)},
		{"/books/42/", DetailRoute(42)},
	}
	for _, tc := range cases {
		got, err := ParseRoute(tc.in)
		if err != nil {
			t.Fatalf("ParseRoute(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRoute(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRoute_Rejects(t *testing.T) {
	for _, in := range []string{"/books", "/books/", "/books/abc", "/books/0", "/books/-3", "/books/1/reviews", "/authors/1"} {
		if _, err := ParseRoute(in); err == nil {
			t.Fatalf("ParseRoute(%q) expected error", in)
		}
	}
}

func TestRouteString(t *testing.T) {
	if got := ListRoute.String(); got != "/" {
		t.Fatalf("ListRoute.String() = %q, want /", got)
	}
	if got := DetailRoute(7).String(); got != "/books/7" {
		t.Fatalf("DetailRoute(7).String() = %q, want /books/7", got)
	}
	if !ListRoute.IsList() || DetailRoute(7).IsList() {
		t.Fatalf("IsList mismatch")
	}
}
