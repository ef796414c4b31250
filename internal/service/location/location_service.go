package location

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// Service answers province/district code lookups from a static JSON file.
// The table is loaded lazily exactly once per process: concurrent first
// callers share a single load via singleflight, every later call is a
// lock-free read of the immutable snapshot. A load failure degrades to an
// empty table; a restart is required to pick up file changes.
type Service struct {
	path string

	sf       singleflight.Group
	mu       sync.RWMutex
	mappings *domain.LocationMappings
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// locationFile mirrors the sabitler.json layout: a flat list of
// province/district records.
type locationFile struct {
	Records []locationRecord `json:"IlIlce"`
}

type locationRecord struct {
	DistrictCode int    `json:"IlceKodu"`
	DistrictName string `json:"IlceAdi"`
	ProvinceCode int    `json:"IlKodu"`
	ProvinceName string `json:"IlAdi"`
}

// Mappings returns the lookup table, loading it on first use.
func (s *Service) Mappings(ctx context.Context) *domain.LocationMappings {
	s.mu.RLock()
	cached := s.mappings
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	loaded, _, _ := s.sf.Do("load", func() (interface{}, error) {
		mappings := s.load(ctx)
		s.mu.Lock()
		s.mappings = mappings
		s.mu.Unlock()
		return mappings, nil
	})

	return loaded.(*domain.LocationMappings)
}

func (s *Service) load(ctx context.Context) *domain.LocationMappings {
	mappings := domain.NewLocationMappings()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		logger.Warnf(ctx, "location data not loaded, path-%s: %s", s.path, err.Error())
		return mappings
	}

	var file locationFile
	if err := sonic.Unmarshal(raw, &file); err != nil {
		logger.Warnf(ctx, "invalid location data, path-%s: %s", s.path, err.Error())
		return mappings
	}

	for _, record := range file.Records {
		provinceCode := PadCode(fmt.Sprintf("%d", record.ProvinceCode))
		provinceName := strings.TrimSpace(record.ProvinceName)
		districtCode := fmt.Sprintf("%d", record.DistrictCode)
		districtName := strings.TrimSpace(record.DistrictName)

		if provinceName != "" {
			mappings.Provinces[provinceCode] = provinceName
		}
		if districtName != "" {
			if mappings.Districts[provinceCode] == nil {
				mappings.Districts[provinceCode] = make(map[string]string)
			}
			mappings.Districts[provinceCode][districtCode] = districtName
		}
	}

	logger.Infof(ctx, "location data loaded, provinces-%d", len(mappings.Provinces))
	return mappings
}

// ProvinceName resolves a province code to its display name. Unknown codes
// come back unchanged.
func (s *Service) ProvinceName(ctx context.Context, code string) string {
	if code == "" {
		return code
	}
	if name, ok := s.Mappings(ctx).Provinces[PadCode(code)]; ok {
		return name
	}
	return code
}

// DistrictName resolves a district code within a province. Unknown codes
// come back unchanged.
func (s *Service) DistrictName(ctx context.Context, provinceCode, districtCode string) string {
	if provinceCode == "" || districtCode == "" {
		return districtCode
	}
	if districts, ok := s.Mappings(ctx).Districts[PadCode(provinceCode)]; ok {
		if name, ok := districts[districtCode]; ok {
			return name
		}
	}
	return districtCode
}

// ProvinceCodeByName does the reverse lookup, used when a record already
// carries a resolved province name.
func (s *Service) ProvinceCodeByName(ctx context.Context, name string) string {
	for code, provinceName := range s.Mappings(ctx).Provinces {
		if provinceName == name {
			return code
		}
	}
	return ""
}

// Provinces lists all provinces sorted by display name.
func (s *Service) Provinces(ctx context.Context) []domain.ProvinceItem {
	mappings := s.Mappings(ctx)

	items := make([]domain.ProvinceItem, 0, len(mappings.Provinces))
	for code, name := range mappings.Provinces {
		items = append(items, domain.ProvinceItem{Code: code, Name: name})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// Districts lists the districts of a province sorted by display name. An
// unknown province yields an empty list.
func (s *Service) Districts(ctx context.Context, provinceCode string) []domain.DistrictItem {
	mappings := s.Mappings(ctx)
	padded := PadCode(provinceCode)

	items := make([]domain.DistrictItem, 0)
	for code, name := range mappings.Districts[padded] {
		items = append(items, domain.DistrictItem{Code: code, Name: name, ProvinceCode: padded})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// PadCode zero-pads a province code to the table's fixed two-digit width.
func PadCode(code string) string {
	if len(code) >= 2 {
		return code
	}
	return strings.Repeat("0", 2-len(code)) + code
}
