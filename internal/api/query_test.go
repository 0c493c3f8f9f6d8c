package api

import (
	"net/http/httptest"
	"testing"
)

func TestParseListQuery(t *testing.T) {
	cases := []struct {
		url  string
		want ListQuery
	}{
		{"/products", ListQuery{Sort: "asc", Limit: 0}},
		{"/products?sort=desc", ListQuery{Sort: "desc", Limit: 0}},
		{"/products?limit=5", ListQuery{Sort: "asc", Limit: 5}},
		{"/products?sort=desc&limit=3", ListQuery{Sort: "desc", Limit: 3}},
		{"/products?limit=abc", ListQuery{Sort: "asc", Limit: 0}},
	}

	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		if got := parseListQuery(r); got != tc.want {
			t.Fatalf("parseListQuery(%s) = %+v, want %+v", tc.url, got, tc.want)
		}
	}
}

func TestApplyListQuery(t *testing.T) {
	base := func() []int { return []int{1, 2, 3, 4, 5} }

	if got := applyListQuery(base(), ListQuery{Sort: "asc"}); got[0] != 1 || len(got) != 5 {
		t.Fatalf("asc unbounded = %v", got)
	}

	if got := applyListQuery(base(), ListQuery{Sort: "desc"}); got[0] != 5 || got[4] != 1 {
		t.Fatalf("desc = %v", got)
	}

	if got := applyListQuery(base(), ListQuery{Sort: "asc", Limit: 2}); len(got) != 2 || got[1] != 2 {
		t.Fatalf("limit = %v", got)
	}

	// Limit applies after ordering.
	if got := applyListQuery(base(), ListQuery{Sort: "desc", Limit: 2}); got[0] != 5 || got[1] != 4 {
		t.Fatalf("desc+limit = %v", got)
	}

	// Zero, negative, and oversized limits are unbounded.
	if got := applyListQuery(base(), ListQuery{Sort: "asc", Limit: -1}); len(got) != 5 {
		t.Fatalf("negative limit = %v", got)
	}
	if got := applyListQuery(base(), ListQuery{Sort: "asc", Limit: 100}); len(got) != 5 {
		t.Fatalf("oversized limit = %v", got)
	}
}
