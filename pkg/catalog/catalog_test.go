package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"bestbuy/pkg/catalog"
	"bestbuy/pkg/product"
)

func TestBuildDefault(t *testing.T) {
	s, err := catalog.Build(catalog.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	active := s.ActiveProducts()
	if len(active) != 5 {
		t.Fatalf("expected 5 active products, got %d", len(active))
	}
	if active[0].Name() != "MacBook Air M2" {
		t.Fatalf("unexpected first product: %s", active[0].Name())
	}
	if active[0].Promotion() == nil || active[0].Promotion().Name() != "Second Half price!" {
		t.Fatalf("macbook promotion not attached")
	}
	if active[3].Kind() != product.Unlimited {
		t.Fatalf("expected unlimited license, got %v", active[3].Kind())
	}
	if active[4].Kind() != product.Capped || active[4].MaxPerOrder() != 1 {
		t.Fatalf("expected shipping capped at 1 per order")
	}
	// 100 + 500 + 250 + 250; the license contributes 0.
	if got := s.TotalQuantity(); got != 1100 {
		t.Fatalf("expected total quantity 1100, got %d", got)
	}
}

func TestBuildUnknownPromotion(t *testing.T) {
	cfg := catalog.Config{
		Products: []catalog.ProductSpec{
			{Name: "MacBook Air M2", Price: 1450, Quantity: 100, Promotion: "Nope"},
		},
	}
	if _, err := catalog.Build(cfg); err == nil {
		t.Fatal("expected error for unknown promotion reference")
	}
}

func TestBuildInvalidProduct(t *testing.T) {
	cfg := catalog.Config{
		Products: []catalog.ProductSpec{{Name: "", Price: 10, Quantity: 1}},
	}
	if _, err := catalog.Build(cfg); err == nil {
		t.Fatal("expected error for empty product name")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"promotions": [{"name": "30% off!", "kind": "percent_off", "percent": 30}],
		"products": [
			{"name": "Google Pixel 7", "price": 500, "quantity": 250, "promotion": "30% off!"},
			{"name": "Shipping", "price": 10, "quantity": 250, "kind": "capped", "max_per_order": 1}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, err := catalog.Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s.ActiveProducts()) != 2 {
		t.Fatalf("expected 2 products, got %d", len(s.ActiveProducts()))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
