package search

import (
	"sort"
	"strings"
	"time"

	"github.com/ecakir/cart-dashboard/internal/domain"
)

// AggName is the single aggregation key every chart request uses.
const AggName = "data"

// Default bucket caps: charts take the top 50 buckets, dropdowns list up to
// 200 distinct values.
const (
	ChartBucketSize    = 50
	DropdownBucketSize = 200
)

// TermsAgg builds a terms aggregation over the field, capped at size buckets.
func TermsAgg(field string, size int) map[string]any {
	return map[string]any{
		"terms": map[string]any{
			"field": field,
			"size":  size,
		},
	}
}

// DateHistogramAgg builds a calendar-interval date histogram with the given
// key format ("day"/"yyyy-MM-dd" for daily, "month"/"yyyy-MM" for monthly).
func DateHistogramAgg(field, interval, format string) map[string]any {
	return map[string]any{
		"date_histogram": map[string]any{
			"field":             field,
			"calendar_interval": interval,
			"format":            format,
		},
	}
}

// AutocompleteAgg is a degenerate terms aggregation: no hits, buckets
// restricted to values containing the lower-cased query.
func AutocompleteAgg(field, query string, size int) map[string]any {
	return map[string]any{
		"terms": map[string]any{
			"field":   field,
			"size":    size,
			"include": ".*" + strings.ToLower(query) + ".*",
		},
	}
}

// AggBody assembles a hit-less aggregation request body.
func AggBody(query map[string]any, aggs map[string]any) map[string]any {
	return map[string]any{
		"size":  0,
		"query": query,
		"aggs":  map[string]any{AggName: aggs},
	}
}

// FlattenBuckets turns the named aggregation's buckets into a chart series,
// preserving engine bucket order (count-descending for terms, chronological
// for date histograms). Date-histogram buckets carry their bucket timestamp.
func FlattenBuckets(resp *Response) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0)
	agg, ok := resp.Aggregations[AggName]
	if !ok {
		return points
	}

	for _, bucket := range agg.Buckets {
		point := domain.ChartPoint{
			Label: bucket.KeyString(),
			Key:   bucket.KeyString(),
			Value: bucket.DocCount,
		}
		if ms, ok := bucket.KeyMillis(); ok {
			t := time.UnixMilli(ms).UTC()
			point.Date = &t
		}
		points = append(points, point)
	}

	return points
}

// FlattenDropdown flattens buckets into dropdown items sorted alphabetically
// by display text, unlike chart series which keep engine order.
func FlattenDropdown(resp *Response) []domain.DropdownItem {
	items := make([]domain.DropdownItem, 0)
	agg, ok := resp.Aggregations[AggName]
	if !ok {
		return items
	}

	for _, bucket := range agg.Buckets {
		key := bucket.KeyString()
		items = append(items, domain.DropdownItem{
			Value: key,
			Text:  key,
			Count: bucket.DocCount,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Text < items[j].Text })
	return items
}

// FlattenAutocomplete flattens buckets into suggestions, engine order.
func FlattenAutocomplete(resp *Response) []domain.AutocompleteItem {
	items := make([]domain.AutocompleteItem, 0)
	agg, ok := resp.Aggregations[AggName]
	if !ok {
		return items
	}

	for _, bucket := range agg.Buckets {
		items = append(items, domain.AutocompleteItem{
			Text:  bucket.KeyString(),
			Count: bucket.DocCount,
		})
	}
	return items
}
