package search

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Response is the decoded slice of the engine's search envelope the
// dashboard cares about: hits with sort tuples, the total (exact or lower
// bound), and aggregation buckets.
type Response struct {
	Hits         Hits                 `json:"hits"`
	Aggregations map[string]Aggregate `json:"aggregations"`
}

type Hits struct {
	Total Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total carries the hit count and its relation: "eq" for exact, "gte" when
// the engine stopped counting at its track_total_hits threshold.
type Total struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation"`
}

func (t Total) IsExact() bool {
	return t.Relation == "" || t.Relation == "eq"
}

// Hit keeps the source and sort values raw; the sort tuple is handed back to
// clients as an opaque continuation token.
type Hit struct {
	ID     string            `json:"_id"`
	Source json.RawMessage   `json:"_source"`
	Sort   []json.RawMessage `json:"sort"`
}

type Aggregate struct {
	Buckets []Bucket `json:"buckets"`
}

// Bucket is one terms or date-histogram bucket. Key stays raw because terms
// buckets key by string and date histograms by epoch millis.
type Bucket struct {
	Key         json.RawMessage `json:"key"`
	KeyAsString string          `json:"key_as_string"`
	DocCount    int64           `json:"doc_count"`
}

// KeyString renders the bucket key for display: the engine-formatted string
// when present, otherwise the raw key with string quoting stripped.
func (b Bucket) KeyString() string {
	if b.KeyAsString != "" {
		return b.KeyAsString
	}
	raw := strings.TrimSpace(string(b.Key))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		return unquoted
	}
	return raw
}

// KeyMillis parses the raw key as epoch milliseconds. Only meaningful for
// date-histogram buckets.
func (b Bucket) KeyMillis() (int64, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(string(b.Key)), 10, 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}

// LastSort returns the sort tuple of the last hit, the continuation token
// for the next page. Nil when the page is empty.
func (r *Response) LastSort() []json.RawMessage {
	if len(r.Hits.Hits) == 0 {
		return nil
	}
	return r.Hits.Hits[len(r.Hits.Hits)-1].Sort
}
