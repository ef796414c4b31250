package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/ecakir/cart-dashboard/internal/pkg/search"
	"golang.org/x/sync/errgroup"
)

// Service translates dashboard requests into engine queries and maps the
// results back. It holds no per-request state; every call builds its own
// query objects.
type Service struct {
	engine search.Engine
	ix     search.Indices
}

func NewService(engine search.Engine, ix search.Indices) *Service {
	return &Service{engine: engine, ix: ix}
}

// CartItems returns one page of cart events matching the filter.
func (s *Service) CartItems(ctx context.Context, filter domain.DashboardFilter, p domain.Pagination) (*domain.PagedResponse[domain.CartItem], error) {
	filter = filter.Normalize()
	p = p.Normalized()

	query := search.BoolQuery(search.BuildMustClauses(filter, s.ix.Cart, s.ix))
	resp, err := s.engine.Search(ctx, s.ix.Cart, search.PagedBody(query, p, search.FieldLastAction))
	if err != nil {
		return nil, fmt.Errorf("cart search: %w", err)
	}

	items := make([]domain.CartItem, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		item, mapErr := search.MapCartItem(hit.Source, hit.ID)
		if mapErr != nil {
			// One malformed document must never abort the page.
			logger.Warnf(ctx, "skipping cart document %s: %s", hit.ID, mapErr.Error())
			continue
		}
		items = append(items, *item)
	}

	return &domain.PagedResponse[domain.CartItem]{
		Items:        items,
		Total:        resp.Hits.Total.Value,
		TotalIsExact: resp.Hits.Total.IsExact(),
		Page:         p.Page,
		Size:         p.Size,
		HasNextPage:  len(resp.Hits.Hits) == p.Size,
		SearchAfter:  resp.LastSort(),
	}, nil
}

// Customers returns one page of customer profiles matching the filter. Only
// the profile-relevant filter fields survive into the query.
func (s *Service) Customers(ctx context.Context, filter domain.DashboardFilter, p domain.Pagination) (*domain.PagedResponse[domain.Customer], error) {
	filter = filter.Normalize().ProfileOnly()
	p = p.Normalized()

	query := search.BoolQuery(search.BuildMustClauses(filter, s.ix.Profile, s.ix))
	resp, err := s.engine.Search(ctx, s.ix.Profile, search.PagedBody(query, p, search.FieldCompanyName))
	if err != nil {
		return nil, fmt.Errorf("customer search: %w", err)
	}

	items := make([]domain.Customer, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		customer, mapErr := search.MapCustomer(hit.Source, hit.ID)
		if mapErr != nil {
			logger.Warnf(ctx, "skipping customer document %s: %s", hit.ID, mapErr.Error())
			continue
		}
		items = append(items, *customer)
	}

	return &domain.PagedResponse[domain.Customer]{
		Items:        items,
		Total:        resp.Hits.Total.Value,
		TotalIsExact: resp.Hits.Total.IsExact(),
		Page:         p.Page,
		Size:         p.Size,
		HasNextPage:  len(resp.Hits.Hits) == p.Size,
		SearchAfter:  resp.LastSort(),
	}, nil
}

// ChartData fans out the six chart queries concurrently and joins on all of
// them. The first sub-query failure fails the whole response; partial charts
// would silently misrepresent the data they omit.
func (s *Service) ChartData(ctx context.Context, filter domain.DashboardFilter) (*domain.ChartData, error) {
	filter = filter.Normalize()

	data := new(domain.ChartData)
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		data.DailyCartTrend, err = s.chartSeries(egCtx, filter, s.ix.Cart,
			search.DateHistogramAgg(search.FieldLastAction, "day", "yyyy-MM-dd"))
		return err
	})
	eg.Go(func() (err error) {
		data.MonthlyTrend, err = s.chartSeries(egCtx, filter, s.ix.Cart,
			search.DateHistogramAgg(search.FieldLastAction, "month", "yyyy-MM"))
		return err
	})
	eg.Go(func() (err error) {
		data.TopProducts, err = s.chartSeries(egCtx, filter, s.ix.Cart,
			search.TermsAgg("properties.MalzemeNo", search.ChartBucketSize))
		return err
	})
	eg.Go(func() (err error) {
		data.TopCustomers, err = s.chartSeries(egCtx, filter, s.ix.Cart,
			search.TermsAgg("properties.MusteriNo", search.ChartBucketSize))
		return err
	})
	eg.Go(func() (err error) {
		data.DepotDistribution, err = s.chartSeries(egCtx, filter, s.ix.Cart,
			search.TermsAgg("properties.SevkiyatDepoKodu", search.ChartBucketSize))
		return err
	})
	eg.Go(func() (err error) {
		data.ProvincePerformance, err = s.chartSeries(egCtx, filter, s.ix.Profile,
			search.TermsAgg("properties.Il", search.ChartBucketSize))
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("chart data: %w", err)
	}

	return data, nil
}

func (s *Service) chartSeries(ctx context.Context, filter domain.DashboardFilter, index string, agg map[string]any) ([]domain.ChartPoint, error) {
	if index == s.ix.Profile {
		filter = filter.ProfileOnly()
	}
	query := search.BoolQuery(search.BuildMustClauses(filter, index, s.ix))

	resp, err := s.engine.Search(ctx, index, search.AggBody(query, agg))
	if err != nil {
		return nil, err
	}
	return search.FlattenBuckets(resp), nil
}

// Autocomplete suggests field values containing the query string.
func (s *Service) Autocomplete(ctx context.Context, req domain.AutocompleteRequest) ([]domain.AutocompleteItem, error) {
	query := domain.CleanValue(req.Query)
	size := req.Size
	if size <= 0 {
		size = 10
	}

	body := map[string]any{
		"size": 0,
		"aggs": map[string]any{
			search.AggName: search.AutocompleteAgg(req.Field, query, size),
		},
	}

	resp, err := s.engine.Search(ctx, req.Index, body)
	if err != nil {
		return nil, fmt.Errorf("autocomplete search: %w", err)
	}

	return search.FlattenAutocomplete(resp), nil
}

// Dropdown lists the distinct values of a field, sorted alphabetically.
func (s *Service) Dropdown(ctx context.Context, field, index string) ([]domain.DropdownItem, error) {
	body := map[string]any{
		"size": 0,
		"aggs": map[string]any{
			search.AggName: search.TermsAgg(field, search.DropdownBucketSize),
		},
	}

	resp, err := s.engine.Search(ctx, index, body)
	if err != nil {
		return nil, fmt.Errorf("dropdown search: %w", err)
	}

	return search.FlattenDropdown(resp), nil
}

// Health reports whether the engine is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.engine.Ping(ctx)
}

// ValidDropdownParams cleans and checks the dropdown query parameters.
func ValidDropdownParams(field, index string) (string, string, bool) {
	field = domain.CleanValue(field)
	index = domain.CleanValue(index)
	if field == "" || index == "" {
		return "", "", false
	}
	return field, strings.TrimSpace(index), true
}
