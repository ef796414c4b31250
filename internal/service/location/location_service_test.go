package location

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const locationFixture = `{
	"IlIlce": [
		{"IlKodu": 6, "IlAdi": "Ankara", "IlceKodu": 1, "IlceAdi": "Çankaya"},
		{"IlKodu": 6, "IlAdi": "Ankara", "IlceKodu": 2, "IlceAdi": "Keçiören"},
		{"IlKodu": 34, "IlAdi": "İstanbul", "IlceKodu": 10, "IlceAdi": "Kadıköy"},
		{"IlKodu": 34, "IlAdi": "İstanbul", "IlceKodu": 11, "IlceAdi": "Beşiktaş"}
	]
}`

func fixtureService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sabitler.json")
	require.NoError(t, os.WriteFile(path, []byte(locationFixture), 0o644))
	return NewService(path)
}

func TestPadCode(t *testing.T) {
	require.Equal(t, "06", PadCode("6"))
	require.Equal(t, "34", PadCode("34"))
	require.Equal(t, "101", PadCode("101"))
	require.Equal(t, "00", PadCode(""))
}

func TestProvinceName(t *testing.T) {
	svc := fixtureService(t)
	ctx := context.Background()

	require.Equal(t, "Ankara", svc.ProvinceName(ctx, "06"))
	require.Equal(t, "Ankara", svc.ProvinceName(ctx, "6"), "unpadded codes resolve too")
	require.Equal(t, "İstanbul", svc.ProvinceName(ctx, "34"))
	require.Equal(t, "99", svc.ProvinceName(ctx, "99"), "unknown code echoes back")
	require.Equal(t, "", svc.ProvinceName(ctx, ""))
}

func TestDistrictName(t *testing.T) {
	svc := fixtureService(t)
	ctx := context.Background()

	require.Equal(t, "Çankaya", svc.DistrictName(ctx, "06", "1"))
	require.Equal(t, "Çankaya", svc.DistrictName(ctx, "6", "1"))
	require.Equal(t, "Kadıköy", svc.DistrictName(ctx, "34", "10"))
	require.Equal(t, "77", svc.DistrictName(ctx, "06", "77"), "unknown district echoes back")
	require.Equal(t, "1", svc.DistrictName(ctx, "99", "1"), "unknown province echoes district back")
	require.Equal(t, "", svc.DistrictName(ctx, "06", ""))
}

func TestProvinceCodeByName(t *testing.T) {
	svc := fixtureService(t)
	ctx := context.Background()

	require.Equal(t, "06", svc.ProvinceCodeByName(ctx, "Ankara"))
	require.Equal(t, "", svc.ProvinceCodeByName(ctx, "Atlantis"))
}

func TestProvincesSortedByName(t *testing.T) {
	svc := fixtureService(t)

	provinces := svc.Provinces(context.Background())

	require.Len(t, provinces, 2)
	require.Equal(t, "Ankara", provinces[0].Name)
	require.Equal(t, "06", provinces[0].Code)
	require.Equal(t, "İstanbul", provinces[1].Name)
}

func TestDistrictsSortedByName(t *testing.T) {
	svc := fixtureService(t)

	districts := svc.Districts(context.Background(), "34")

	require.Len(t, districts, 2)
	require.Equal(t, "Beşiktaş", districts[0].Name)
	require.Equal(t, "Kadıköy", districts[1].Name)
	require.Equal(t, "34", districts[0].ProvinceCode)
}

func TestDistrictsUnknownProvince(t *testing.T) {
	svc := fixtureService(t)

	districts := svc.Districts(context.Background(), "99")
	require.NotNil(t, districts)
	require.Empty(t, districts)
}

func TestMissingFileDegradesToEmpty(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "nope.json"))
	ctx := context.Background()

	mappings := svc.Mappings(ctx)
	require.NotNil(t, mappings)
	require.Empty(t, mappings.Provinces)
	require.Equal(t, "06", svc.ProvinceName(ctx, "06"))
}

func TestMalformedFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sabitler.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"IlIlce": "not a list"`), 0o644))

	svc := NewService(path)
	mappings := svc.Mappings(context.Background())
	require.Empty(t, mappings.Provinces)
}

func TestMappingsLoadedOnce(t *testing.T) {
	svc := fixtureService(t)
	ctx := context.Background()

	first := svc.Mappings(ctx)
	require.NoError(t, os.Remove(svc.path))
	second := svc.Mappings(ctx)

	require.Same(t, first, second)
}
