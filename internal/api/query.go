package api

import (
	"net/http"
	"strconv"
)

// ListQuery is the uniform set of optional query modifiers on list
// endpoints. Sort defaults to ascending; a Limit of zero means unbounded.
// Both are pure post-processing over whatever the store returned.
type ListQuery struct {
	Sort  string
	Limit int
}

func parseListQuery(r *http.Request) ListQuery {
	q := ListQuery{Sort: "asc"}

	if s := r.URL.Query().Get("sort"); s != "" {
		q.Sort = s
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		q.Limit = l
	}

	return q
}

// applyListQuery reverses the id ordering when sort=desc, then truncates to
// the limit. Any sort value other than "desc" keeps the store's order.
func applyListQuery[T any](items []T, q ListQuery) []T {
	if q.Sort == "desc" {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	if q.Limit > 0 && q.Limit < len(items) {
		items = items[:q.Limit]
	}

	return items
}
