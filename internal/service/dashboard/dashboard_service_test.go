package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/search"
	"github.com/stretchr/testify/require"
)

var testIndices = search.Indices{Cart: "context-sepet", Profile: "context-profile"}

// fakeEngine serves canned pages over an ordered document set, honoring the
// size and search_after of the request body the way the real engine would.
type fakeEngine struct {
	mu      sync.Mutex
	docs    []search.Hit
	aggs    func(index string, body map[string]any) (*search.Response, error)
	pingErr error
	bodies  []map[string]any
}

func (f *fakeEngine) Search(_ context.Context, index string, body map[string]any) (*search.Response, error) {
	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	f.mu.Unlock()

	if _, ok := body["aggs"]; ok {
		return f.aggs(index, body)
	}

	size := body["size"].(int)
	start := 0
	if token, ok := body["search_after"].([]json.RawMessage); ok {
		for i, doc := range f.docs {
			if sortEqual(doc.Sort, token) {
				start = i + 1
				break
			}
		}
	}

	end := start + size
	if end > len(f.docs) {
		end = len(f.docs)
	}

	return &search.Response{
		Hits: search.Hits{
			Total: search.Total{Value: int64(len(f.docs)), Relation: "eq"},
			Hits:  f.docs[start:end],
		},
	}, nil
}

func (f *fakeEngine) Ping(context.Context) error { return f.pingErr }

func sortEqual(a, b []json.RawMessage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if string(a[i]) != string(b[i]) {
			return false
		}
	}
	return true
}

func cartHit(i int) search.Hit {
	id := fmt.Sprintf("doc-%02d", i)
	source := fmt.Sprintf(`{"properties": {"MusteriNo": "C-%02d", "MalzemeNo": "M-1", "Adet": %d}}`, i, i)
	return search.Hit{
		ID:     id,
		Source: json.RawMessage(source),
		Sort:   []json.RawMessage{json.RawMessage(fmt.Sprintf(`%d`, 1000-i)), json.RawMessage(`"` + id + `"`)},
	}
}

func cartDataset(n int) []search.Hit {
	hits := make([]search.Hit, 0, n)
	for i := 0; i < n; i++ {
		hits = append(hits, cartHit(i))
	}
	return hits
}

func TestCartItemsCursorRoundTrip(t *testing.T) {
	engine := &fakeEngine{docs: cartDataset(7)}
	svc := NewService(engine, testIndices)
	ctx := context.Background()

	seen := make(map[string]bool)
	p := domain.Pagination{Size: 3}

	for pageNo := 1; ; pageNo++ {
		p.Page = pageNo
		page, err := svc.CartItems(ctx, domain.DashboardFilter{}, p)
		require.NoError(t, err)
		require.Equal(t, int64(7), page.Total)
		require.True(t, page.TotalIsExact)

		for _, item := range page.Items {
			require.False(t, seen[item.ID], "item %s served twice", item.ID)
			seen[item.ID] = true
		}

		if !page.HasNextPage {
			break
		}
		p.SearchAfter = page.SearchAfter
	}

	require.Len(t, seen, 7, "every document served exactly once")
}

func TestCartItemsHasNextPageBoundary(t *testing.T) {
	// 6 documents, pages of 3: the second page comes back full so the
	// heuristic reports a next page that turns out empty.
	engine := &fakeEngine{docs: cartDataset(6)}
	svc := NewService(engine, testIndices)
	ctx := context.Background()

	first, err := svc.CartItems(ctx, domain.DashboardFilter{}, domain.Pagination{Size: 3})
	require.NoError(t, err)
	require.True(t, first.HasNextPage)

	second, err := svc.CartItems(ctx, domain.DashboardFilter{}, domain.Pagination{Size: 3, SearchAfter: first.SearchAfter})
	require.NoError(t, err)
	require.Len(t, second.Items, 3)
	require.True(t, second.HasNextPage)

	third, err := svc.CartItems(ctx, domain.DashboardFilter{}, domain.Pagination{Size: 3, SearchAfter: second.SearchAfter})
	require.NoError(t, err)
	require.Empty(t, third.Items)
	require.False(t, third.HasNextPage)
}

func TestCartItemsSkipsMalformedDocuments(t *testing.T) {
	docs := cartDataset(3)
	docs[1].Source = json.RawMessage(`{"no-properties": true}`)

	engine := &fakeEngine{docs: docs}
	svc := NewService(engine, testIndices)

	page, err := svc.CartItems(context.Background(), domain.DashboardFilter{}, domain.Pagination{Size: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 2, "malformed document skipped, page not aborted")
	require.Equal(t, "doc-00", page.Items[0].ID)
	require.Equal(t, "doc-02", page.Items[1].ID)
}

func TestCustomersUsesProfileFilterSubset(t *testing.T) {
	engine := &fakeEngine{docs: []search.Hit{}}
	svc := NewService(engine, testIndices)

	filter := domain.DashboardFilter{CustomerNo: "C-1", MaterialNo: "M-1", DepotCode: "D-1"}
	_, err := svc.Customers(context.Background(), filter, domain.Pagination{})
	require.NoError(t, err)

	require.Len(t, engine.bodies, 1)
	query := engine.bodies[0]["query"].(map[string]any)
	boolPart := query["bool"].(map[string]any)
	must := boolPart["must"].([]map[string]any)
	require.Len(t, must, 1, "cart-only filters must not reach the profile index")
}

func TestChartDataPopulatesAllSeries(t *testing.T) {
	engine := &fakeEngine{
		aggs: func(index string, _ map[string]any) (*search.Response, error) {
			key := `"cart"`
			if index == testIndices.Profile {
				key = `"06"`
			}
			return &search.Response{
				Aggregations: map[string]search.Aggregate{
					search.AggName: {Buckets: []search.Bucket{
						{Key: json.RawMessage(key), DocCount: 5},
					}},
				},
			}, nil
		},
	}
	svc := NewService(engine, testIndices)

	data, err := svc.ChartData(context.Background(), domain.DashboardFilter{})
	require.NoError(t, err)

	require.Len(t, data.DailyCartTrend, 1)
	require.Len(t, data.MonthlyTrend, 1)
	require.Len(t, data.TopProducts, 1)
	require.Len(t, data.TopCustomers, 1)
	require.Len(t, data.DepotDistribution, 1)
	require.Len(t, data.ProvincePerformance, 1)
	require.Equal(t, "06", data.ProvincePerformance[0].Key)
	require.Len(t, engine.bodies, 6, "six concurrent aggregation queries")
}

func TestChartDataFailsWholeOnSubQueryError(t *testing.T) {
	boom := errors.New("shard failure")
	engine := &fakeEngine{
		aggs: func(index string, _ map[string]any) (*search.Response, error) {
			if index == testIndices.Profile {
				return nil, boom
			}
			return &search.Response{}, nil
		},
	}
	svc := NewService(engine, testIndices)

	_, err := svc.ChartData(context.Background(), domain.DashboardFilter{})
	require.ErrorIs(t, err, boom)
}

func TestAutocompleteDefaultSize(t *testing.T) {
	engine := &fakeEngine{
		aggs: func(_ string, body map[string]any) (*search.Response, error) {
			aggs := body["aggs"].(map[string]any)
			terms := aggs[search.AggName].(map[string]any)["terms"].(map[string]any)
			if terms["size"] != 10 {
				return nil, fmt.Errorf("unexpected size %v", terms["size"])
			}
			return &search.Response{
				Aggregations: map[string]search.Aggregate{
					search.AggName: {Buckets: []search.Bucket{
						{Key: json.RawMessage(`"acme ltd"`), DocCount: 2},
					}},
				},
			}, nil
		},
	}
	svc := NewService(engine, testIndices)

	items, err := svc.Autocomplete(context.Background(), domain.AutocompleteRequest{
		Query: "Acme",
		Field: "properties.firmaAdi",
		Index: testIndices.Profile,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "acme ltd", items[0].Text)
}

func TestDropdownSorted(t *testing.T) {
	engine := &fakeEngine{
		aggs: func(string, map[string]any) (*search.Response, error) {
			return &search.Response{
				Aggregations: map[string]search.Aggregate{
					search.AggName: {Buckets: []search.Bucket{
						{Key: json.RawMessage(`"D-9"`), DocCount: 40},
						{Key: json.RawMessage(`"D-1"`), DocCount: 10},
					}},
				},
			}, nil
		},
	}
	svc := NewService(engine, testIndices)

	items, err := svc.Dropdown(context.Background(), "properties.SevkiyatDepoKodu", testIndices.Cart)
	require.NoError(t, err)
	require.Equal(t, "D-1", items[0].Value)
	require.Equal(t, "D-9", items[1].Value)
}

func TestHealth(t *testing.T) {
	healthy := &fakeEngine{}
	require.NoError(t, NewService(healthy, testIndices).Health(context.Background()))

	down := &fakeEngine{pingErr: errors.New("connection refused")}
	require.Error(t, NewService(down, testIndices).Health(context.Background()))
}

func TestValidDropdownParams(t *testing.T) {
	field, index, ok := ValidDropdownParams("properties.Il", "context-profile")
	require.True(t, ok)
	require.Equal(t, "properties.Il", field)
	require.Equal(t, "context-profile", index)

	_, _, ok = ValidDropdownParams("string", "context-profile")
	require.False(t, ok)

	_, _, ok = ValidDropdownParams("properties.Il", "")
	require.False(t, ok)
}
