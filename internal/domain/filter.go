package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DashboardFilter holds the optional equality filters shared by every
// dashboard endpoint. Empty fields mean "not filtered".
type DashboardFilter struct {
	CustomerNo string           `json:"customerNo,omitempty"`
	UserCode   string           `json:"userCode,omitempty"`
	MaterialNo string           `json:"materialNo,omitempty"`
	Province   string           `json:"province,omitempty"`
	District   string           `json:"district,omitempty"`
	DepotCode  string           `json:"depotCode,omitempty"`
	DateRange  *DateRangeFilter `json:"dateRange,omitempty"`
}

// DateRangeFilter is an inclusive [Start, End] range over the named date field.
type DateRangeFilter struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Field string    `json:"field"`
}

// Normalize returns a copy of the filter with every string field either a
// trimmed meaningful value or empty. Swagger and browser clients send the
// placeholder tokens "string", "null" and "undefined" for untouched inputs;
// those count as absent. Idempotent.
func (f DashboardFilter) Normalize() DashboardFilter {
	return DashboardFilter{
		CustomerNo: CleanValue(f.CustomerNo),
		UserCode:   CleanValue(f.UserCode),
		MaterialNo: CleanValue(f.MaterialNo),
		Province:   CleanValue(f.Province),
		District:   CleanValue(f.District),
		DepotCode:  CleanValue(f.DepotCode),
		DateRange:  f.DateRange.normalize(),
	}
}

// ProfileOnly drops the cart-only fields, leaving the subset the profile
// index understands.
func (f DashboardFilter) ProfileOnly() DashboardFilter {
	return DashboardFilter{
		CustomerNo: f.CustomerNo,
		UserCode:   f.UserCode,
		Province:   f.Province,
		District:   f.District,
	}
}

// normalize drops the whole range when the field name is absent: a range
// without a target field must not silently default to some fixed field.
func (r *DateRangeFilter) normalize() *DateRangeFilter {
	if r == nil {
		return nil
	}
	field := CleanValue(r.Field)
	if field == "" {
		return nil
	}
	return &DateRangeFilter{Start: r.Start, End: r.End, Field: field}
}

// CleanValue trims the value and maps the client placeholder tokens to empty.
func CleanValue(value string) string {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case "", "string", "null", "undefined":
		return ""
	}
	return trimmed
}

// MaxPageSize is the hard cap on the requested page size.
const (
	MaxPageSize     = 200
	DefaultPageSize = 50
)

// Pagination carries the paging and sorting request state. SearchAfter is an
// opaque continuation token: the sort-key tuple of the last item of the
// previous page, replayed verbatim. A token produced under a different
// filter or sort configuration is a caller error and is not validated here.
type Pagination struct {
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	SortField     string            `json:"sortField,omitempty"`
	SortDirection string            `json:"sortDirection,omitempty"`
	SearchAfter   []json.RawMessage `json:"searchAfter,omitempty"`
}

// Normalized clamps the pagination to sane bounds.
func (p Pagination) Normalized() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if !strings.EqualFold(p.SortDirection, "asc") {
		p.SortDirection = "desc"
	} else {
		p.SortDirection = "asc"
	}
	p.SortField = CleanValue(p.SortField)
	return p
}
