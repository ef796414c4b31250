package search

import (
	"github.com/ecakir/cart-dashboard/internal/domain"
)

// BuildSort builds the sort spec for a paginated search: the requested field
// (prefixed into the document's property namespace) or the index default,
// then always the document id ascending. The id tie-break gives a total
// order so search_after never duplicates or skips rows on primary-sort ties.
func BuildSort(p domain.Pagination, defaultField string) []map[string]any {
	sorts := make([]map[string]any, 0, 2)

	if p.SortField != "" {
		sorts = append(sorts, map[string]any{
			"properties." + p.SortField: map[string]any{"order": p.SortDirection},
		})
	} else {
		sorts = append(sorts, map[string]any{
			defaultField: map[string]any{"order": "desc"},
		})
	}

	sorts = append(sorts, map[string]any{
		"_id": map[string]any{"order": "asc"},
	})

	return sorts
}

// PagedBody assembles the full request body for a paginated search. The
// continuation token, when present, is the previous page's last sort tuple
// replayed verbatim.
func PagedBody(query map[string]any, p domain.Pagination, defaultField string) map[string]any {
	body := map[string]any{
		"query":            query,
		"size":             p.Size,
		"sort":             BuildSort(p, defaultField),
		"track_total_hits": true,
	}
	if len(p.SearchAfter) > 0 {
		body["search_after"] = p.SearchAfter
	}
	return body
}
