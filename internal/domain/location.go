package domain

// LocationMappings is the in-memory province/district lookup table.
// Province codes are two-digit zero-padded strings; district maps are keyed
// by province code.
type LocationMappings struct {
	Provinces map[string]string            `json:"provinces"`
	Districts map[string]map[string]string `json:"districts"`
}

func NewLocationMappings() *LocationMappings {
	return &LocationMappings{
		Provinces: make(map[string]string),
		Districts: make(map[string]map[string]string),
	}
}

// ProvinceItem is one province dropdown entry.
type ProvinceItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DistrictItem is one district dropdown entry.
type DistrictItem struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"provinceCode"`
}
