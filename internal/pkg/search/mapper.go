package search

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// Documents arrive schemaless: the payload sits under "properties", either
// at the document root or below a "_source" wrapper depending on how the hit
// was handed over. Extraction is defensive: a missing field yields the type's
// default, a type-mismatched one fails the whole record so the caller can
// skip and log it without aborting the page.

var timeLayouts = []string{
	"2006-01-02T15:04:05.000000Z",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// MapCartItem decodes one cart document.
func MapCartItem(raw json.RawMessage, id string) (*domain.CartItem, error) {
	props, err := properties(raw)
	if err != nil {
		return nil, err
	}

	r := propReader{props: props}
	item := &domain.CartItem{
		ID:           id,
		CustomerNo:   r.String("MusteriNo"),
		UserCode:     r.String("KullaniciKodu"),
		MaterialNo:   r.String("MalzemeNo"),
		Quantity:     r.Int("Adet"),
		OrderNo:      r.String("SiparisNo"),
		DepotCode:    r.String("SevkiyatDepoKodu"),
		LastActionAt: r.Time("SonIslemTarihi"),
		Province:     r.String("Il"),
		District:     r.String("Ilce"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return item, nil
}

// MapCustomer decodes one customer profile document.
func MapCustomer(raw json.RawMessage, id string) (*domain.Customer, error) {
	props, err := properties(raw)
	if err != nil {
		return nil, err
	}

	r := propReader{props: props}
	customer := &domain.Customer{
		ID:           id,
		CompanyName:  r.String("firmaAdi"),
		CustomerNo:   r.String("MusteriNo"),
		Email:        r.String("Mail"),
		Phone:        r.String("Telefon"),
		Province:     r.String("Il"),
		District:     r.String("Ilce"),
		RegionCode:   r.String("BolgeKodu"),
		SalesRepName: r.String("PlasiyerAdi"),
		LastLoginAt:  r.TimePtr("sonGirisTarihi"),
		Active:       r.Bool("Aktif"),
		UserType:     r.String("KullaniciTipi"),
		Address:      r.String("adres"),
		LocationCode: r.String("konumKodu"),
		UserName:     r.String("kullaniciAdi"),

		DbsLimit:       r.Decimal("DbsLimit"),
		DbsDebt:        r.Decimal("VadeliDbsBorc"),
		DbsRemaining:   r.Decimal("KalanDbs"),
		LimitUsageRate: r.Decimal("LimitKullanimOrani"),
		AccountBalance: r.Decimal("CariHesapBakiyesi"),
		CreditLimit:    r.Decimal("KrediLimiti"),
		MortgageLimit:  r.Decimal("IpotekLimiti"),
		InsuranceLimit: r.Decimal("SigortaLimiti"),
		CheckRisk:      r.Decimal("CekRiski"),
		OpenOrders:     r.Decimal("AcikSiparisTutar"),
		OpenInvoices:   r.Decimal("AcikFaturaTutar"),
		OpenShipments:  r.Decimal("AcikDagitimTutar"),
		OpenDeliveries: r.Decimal("AcikIrsaliye"),
		Aging0:         r.Decimal("Yaslandirma0"),
		Aging30:        r.Decimal("Yaslandirma30"),
		Aging60:        r.Decimal("Yaslandirma60"),
		Aging90:        r.Decimal("Yaslandirma90"),
		Aging120:       r.Decimal("Yaslandirma120"),
		RemainingLimit: r.Decimal("KalanLimit"),
		Overdue:        r.Decimal("VadesiGecen"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return customer, nil
}

// properties locates the payload object, unwrapping "_source" when present.
func properties(raw json.RawMessage) (map[string]any, error) {
	var doc map[string]any
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	root := doc
	if source, ok := doc["_source"].(map[string]any); ok {
		root = source
	}

	props, ok := root["properties"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document has no properties object")
	}
	return props, nil
}

// propReader extracts typed fields, remembering the first type mismatch.
// Missing fields never error; they produce the documented defaults.
type propReader struct {
	props map[string]any
	err   error
}

func (r *propReader) String(name string) string {
	v, ok := r.props[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.mismatch(name, "string", v)
		return ""
	}
	return s
}

func (r *propReader) Int(name string) int {
	v, ok := r.props[name]
	if !ok || v == nil {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		r.mismatch(name, "number", v)
		return 0
	}
	return int(f)
}

func (r *propReader) Decimal(name string) decimal.Decimal {
	v, ok := r.props[name]
	if !ok || v == nil {
		return decimal.Zero
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			r.mismatch(name, "decimal", v)
			return decimal.Zero
		}
		return d
	default:
		r.mismatch(name, "decimal", v)
		return decimal.Zero
	}
}

func (r *propReader) Bool(name string) bool {
	v, ok := r.props[name]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.mismatch(name, "bool", v)
		return false
	}
	return b
}

func (r *propReader) Time(name string) time.Time {
	v, ok := r.props[name]
	if !ok || v == nil {
		return time.Time{}
	}
	s, ok := v.(string)
	if !ok {
		r.mismatch(name, "date string", v)
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	r.mismatch(name, "date string", v)
	return time.Time{}
}

func (r *propReader) TimePtr(name string) *time.Time {
	if _, ok := r.props[name]; !ok {
		return nil
	}
	t := r.Time(name)
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *propReader) mismatch(name, want string, got any) {
	if r.err == nil {
		r.err = fmt.Errorf("field %s: expected %s, got %T", name, want, got)
	}
}
