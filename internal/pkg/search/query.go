package search

import (
	"github.com/ecakir/cart-dashboard/internal/domain"
)

// Canonical document fields. Both indices nest their payload under a
// "properties" object; the profile index names a few fields differently.
const (
	fieldCustomerNo      = "properties.MusteriNo"
	fieldUserCodeCart    = "properties.KullaniciKodu"
	fieldUserCodeProfile = "properties.kullaniciAdi"
	fieldProvince        = "properties.Il"
	fieldDistrict        = "properties.Ilce"
	fieldMaterialNo      = "properties.MalzemeNo"
	fieldDepotCode       = "properties.SevkiyatDepoKodu"

	FieldLastAction  = "properties.SonIslemTarihi"
	FieldCompanyName = "properties.firmaAdi"

	// dateRangeFormat matches the index mapping: strict ISO with microseconds.
	dateRangeFormat = "yyyy-MM-dd'T'HH:mm:ss.SSSSSS'Z'"
	dateRangeLayout = "2006-01-02T15:04:05.000000Z"
)

// BuildMustClauses translates a normalized filter into the ordered list of
// bool-must clauses for the target index. Material, depot and date-range
// filters only exist in the cart index and are not emitted for the profile
// index. The user-code filter hits a different field per index: the profile
// index stores the display username, the cart index the user code.
//
// Clause order is fixed so query shapes stay reproducible in logs and tests.
func BuildMustClauses(f domain.DashboardFilter, index string, ix Indices) []map[string]any {
	clauses := make([]map[string]any, 0, 7)

	if f.CustomerNo != "" {
		clauses = append(clauses, termClause(fieldCustomerNo, f.CustomerNo))
	}

	if f.UserCode != "" {
		field := fieldUserCodeCart
		if index == ix.Profile {
			field = fieldUserCodeProfile
		}
		clauses = append(clauses, termClause(field, f.UserCode))
	}

	if f.Province != "" {
		clauses = append(clauses, termClause(fieldProvince, f.Province))
	}

	if f.District != "" {
		clauses = append(clauses, termClause(fieldDistrict, f.District))
	}

	if f.MaterialNo != "" && index == ix.Cart {
		clauses = append(clauses, termClause(fieldMaterialNo, f.MaterialNo))
	}

	if f.DepotCode != "" && index == ix.Cart {
		clauses = append(clauses, termClause(fieldDepotCode, f.DepotCode))
	}

	if f.DateRange != nil && index == ix.Cart {
		clauses = append(clauses, rangeClause("properties."+f.DateRange.Field, f.DateRange))
	}

	return clauses
}

// BoolQuery wraps must clauses into a bool query. An empty must list becomes
// an explicit match_all: some engines treat an empty must as match-none.
func BoolQuery(must []map[string]any) map[string]any {
	if len(must) == 0 {
		return map[string]any{"match_all": map[string]any{}}
	}
	return map[string]any{
		"bool": map[string]any{"must": must},
	}
}

func termClause(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: map[string]any{"value": value},
		},
	}
}

func rangeClause(field string, r *domain.DateRangeFilter) map[string]any {
	return map[string]any{
		"range": map[string]any{
			field: map[string]any{
				"gte":    r.Start.UTC().Format(dateRangeLayout),
				"lte":    r.End.UTC().Format(dateRangeLayout),
				"format": dateRangeFormat,
			},
		},
	}
}
