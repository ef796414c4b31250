package domain

import (
	"encoding/json"
	"time"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func SuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: &data}
}

func SuccessResponseMsg[T any](data T, msg string) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: &data, Message: msg}
}

func ErrorResponse[T any](msg string) APIResponse[T] {
	return APIResponse[T]{Success: false, Message: msg}
}

// PagedResponse is one page of search results.
//
// HasNextPage is a heuristic: true iff the page came back full. At an exact
// data-length boundary it reports true even though the next page is empty;
// callers get one trailing empty page in that case.
type PagedResponse[T any] struct {
	Items        []T               `json:"items"`
	Total        int64             `json:"total"`
	TotalIsExact bool              `json:"totalIsExact"`
	Page         int               `json:"page"`
	Size         int               `json:"size"`
	HasNextPage  bool              `json:"hasNextPage"`
	SearchAfter  []json.RawMessage `json:"searchAfter,omitempty"`
}

// ChartPoint is one bucket of a chart series.
type ChartPoint struct {
	Label string     `json:"label"`
	Key   string     `json:"key"`
	Value int64      `json:"value"`
	Date  *time.Time `json:"date,omitempty"`
}

// ChartData bundles the six dashboard series.
type ChartData struct {
	DailyCartTrend      []ChartPoint `json:"dailyCartTrend"`
	MonthlyTrend        []ChartPoint `json:"monthlyTrend"`
	TopProducts         []ChartPoint `json:"topProducts"`
	TopCustomers        []ChartPoint `json:"topCustomers"`
	DepotDistribution   []ChartPoint `json:"depotDistribution"`
	ProvincePerformance []ChartPoint `json:"provincePerformance"`
}

// DropdownItem is one alphabetically sorted dropdown entry.
type DropdownItem struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// AutocompleteItem is one suggestion with its document count.
type AutocompleteItem struct {
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// CartItemsRequest is the POST body of the cart-items endpoint.
type CartItemsRequest struct {
	Filter     DashboardFilter `json:"filter"`
	Pagination Pagination      `json:"pagination"`
}

// CustomersRequest is the POST body of the customers endpoint.
type CustomersRequest struct {
	Filter     DashboardFilter `json:"filter"`
	Pagination Pagination      `json:"pagination"`
}

// AutocompleteRequest is the POST body of the autocomplete endpoint. Field
// and Index are raw engine identifiers supplied by the frontend.
type AutocompleteRequest struct {
	Query string `json:"query"`
	Field string `json:"field" validate:"required"`
	Index string `json:"index" validate:"required"`
	Size  int    `json:"size"`
}
