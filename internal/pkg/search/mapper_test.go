package search

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMapCartItemFullDocument(t *testing.T) {
	raw := json.RawMessage(`{
		"properties": {
			"MusteriNo": "C-100",
			"KullaniciKodu": "user01",
			"MalzemeNo": "M-7",
			"Adet": 3,
			"SiparisNo": "S-9",
			"SevkiyatDepoKodu": "D-2",
			"SonIslemTarihi": "2024-03-15T10:30:00.000000Z",
			"Il": "34",
			"Ilce": "5"
		}
	}`)

	item, err := MapCartItem(raw, "doc-1")
	require.NoError(t, err)

	require.Equal(t, "doc-1", item.ID)
	require.Equal(t, "C-100", item.CustomerNo)
	require.Equal(t, "user01", item.UserCode)
	require.Equal(t, "M-7", item.MaterialNo)
	require.Equal(t, 3, item.Quantity)
	require.Equal(t, "S-9", item.OrderNo)
	require.Equal(t, "D-2", item.DepotCode)
	require.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), item.LastActionAt)
	require.Equal(t, "34", item.Province)
	require.Equal(t, "5", item.District)
}

func TestMapCartItemMissingFieldsYieldDefaults(t *testing.T) {
	raw := json.RawMessage(`{"properties": {"MusteriNo": "C-100"}}`)

	item, err := MapCartItem(raw, "doc-2")
	require.NoError(t, err)

	require.Equal(t, "C-100", item.CustomerNo)
	require.Empty(t, item.MaterialNo)
	require.Zero(t, item.Quantity)
	require.True(t, item.LastActionAt.IsZero())
}

func TestMapCartItemUnwrapsSource(t *testing.T) {
	raw := json.RawMessage(`{"_source": {"properties": {"MusteriNo": "C-200"}}}`)

	item, err := MapCartItem(raw, "doc-3")
	require.NoError(t, err)
	require.Equal(t, "C-200", item.CustomerNo)
}

func TestMapCartItemNoProperties(t *testing.T) {
	_, err := MapCartItem(json.RawMessage(`{"MusteriNo": "C-100"}`), "doc-4")
	require.Error(t, err)
}

func TestMapCartItemTypeMismatch(t *testing.T) {
	raw := json.RawMessage(`{"properties": {"MusteriNo": 12345}}`)

	_, err := MapCartItem(raw, "doc-5")
	require.ErrorContains(t, err, "MusteriNo")
}

func TestMapCustomerMonetaryFields(t *testing.T) {
	raw := json.RawMessage(`{
		"properties": {
			"firmaAdi": "Acme Ltd",
			"MusteriNo": "C-100",
			"Aktif": true,
			"DbsLimit": 15000.50,
			"KalanLimit": "2500.25",
			"sonGirisTarihi": "2024-03-15T10:30:00.000000Z"
		}
	}`)

	customer, err := MapCustomer(raw, "doc-10")
	require.NoError(t, err)

	require.Equal(t, "Acme Ltd", customer.CompanyName)
	require.True(t, customer.Active)
	require.True(t, customer.DbsLimit.Equal(decimal.NewFromFloat(15000.50)))
	require.True(t, customer.RemainingLimit.Equal(decimal.RequireFromString("2500.25")))
	require.True(t, customer.Overdue.Equal(decimal.Zero))
	require.NotNil(t, customer.LastLoginAt)
	require.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), *customer.LastLoginAt)
}

func TestMapCustomerMissingLoginDateIsNil(t *testing.T) {
	raw := json.RawMessage(`{"properties": {"MusteriNo": "C-100"}}`)

	customer, err := MapCustomer(raw, "doc-11")
	require.NoError(t, err)
	require.Nil(t, customer.LastLoginAt)
	require.False(t, customer.Active)
}

func TestMapCustomerNullFieldsYieldDefaults(t *testing.T) {
	raw := json.RawMessage(`{
		"properties": {
			"MusteriNo": "C-100",
			"firmaAdi": null,
			"DbsLimit": null,
			"Aktif": null
		}
	}`)

	customer, err := MapCustomer(raw, "doc-12")
	require.NoError(t, err)
	require.Empty(t, customer.CompanyName)
	require.True(t, customer.DbsLimit.Equal(decimal.Zero))
	require.False(t, customer.Active)
}

func TestPropReaderTimeLayouts(t *testing.T) {
	cases := []string{
		"2024-03-15T10:30:00.000000Z",
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30:00",
	}

	for _, value := range cases {
		r := propReader{props: map[string]any{"d": value}}
		got := r.Time("d")
		require.NoError(t, r.err, "layout %q", value)
		require.Equal(t, 2024, got.Year(), "layout %q", value)
	}
}
