// Package catalog builds a store from declarative inventory configuration.
// Bootstrap data lives here and in the caller, never inside the core types.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"bestbuy/pkg/product"
	"bestbuy/pkg/promotion"
	"bestbuy/pkg/store"
)

// PromotionSpec declares a named promotion rule.
type PromotionSpec struct {
	Name    string         `json:"name"`
	Kind    promotion.Kind `json:"kind"`
	Percent float64        `json:"percent,omitempty"`
}

// ProductSpec declares one catalog entry. Kind is "standard" (default),
// "unlimited" or "capped"; Promotion references a PromotionSpec by name.
type ProductSpec struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity,omitempty"`
	Kind        string  `json:"kind,omitempty"`
	MaxPerOrder int     `json:"max_per_order,omitempty"`
	Promotion   string  `json:"promotion,omitempty"`
}

// Config is the full inventory bootstrap: promotions first, then products
// in catalog display order.
type Config struct {
	Promotions []PromotionSpec `json:"promotions"`
	Products   []ProductSpec   `json:"products"`
}

// Load reads a Config from a JSON file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading catalog file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing catalog file: %w", err)
	}
	return cfg, nil
}

// Default returns the stock Best Buy inventory.
func Default() Config {
	return Config{
		Promotions: []PromotionSpec{
			{Name: "Second Half price!", Kind: promotion.KindSecondHalfPrice},
			{Name: "Third One Free!", Kind: promotion.KindThirdOneFree},
			{Name: "30% off!", Kind: promotion.KindPercentOff, Percent: 30},
		},
		Products: []ProductSpec{
			{Name: "MacBook Air M2", Price: 1450, Quantity: 100, Promotion: "Second Half price!"},
			{Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 500, Promotion: "Third One Free!"},
			{Name: "Google Pixel 7", Price: 500, Quantity: 250, Promotion: "30% off!"},
			{Name: "Windows License", Price: 125, Kind: "unlimited"},
			{Name: "Shipping", Price: 10, Quantity: 250, Kind: "capped", MaxPerOrder: 1},
		},
	}
}

// Build validates the config and constructs a stocked store. Product specs
// referencing an unknown promotion name fail the build.
func Build(cfg Config) (*store.Store, error) {
	promos := make(map[string]promotion.Promotion, len(cfg.Promotions))
	for _, spec := range cfg.Promotions {
		p, err := buildPromotion(spec)
		if err != nil {
			return nil, err
		}
		promos[spec.Name] = p
	}

	products := make([]*product.Product, 0, len(cfg.Products))
	for _, spec := range cfg.Products {
		p, err := buildProduct(spec)
		if err != nil {
			return nil, err
		}
		if spec.Promotion != "" {
			promo, ok := promos[spec.Promotion]
			if !ok {
				return nil, fmt.Errorf("product %q: unknown promotion %q", spec.Name, spec.Promotion)
			}
			p.SetPromotion(promo)
		}
		products = append(products, p)
	}
	return store.New(products...), nil
}

func buildPromotion(spec PromotionSpec) (promotion.Promotion, error) {
	switch spec.Kind {
	case promotion.KindSecondHalfPrice:
		return promotion.NewSecondHalfPrice(spec.Name), nil
	case promotion.KindThirdOneFree:
		return promotion.NewThirdOneFree(spec.Name), nil
	case promotion.KindPercentOff:
		return promotion.NewPercentOff(spec.Name, decimal.NewFromFloat(spec.Percent)), nil
	default:
		return promotion.Promotion{}, fmt.Errorf("promotion %q: unknown kind %q", spec.Name, spec.Kind)
	}
}

func buildProduct(spec ProductSpec) (*product.Product, error) {
	price := decimal.NewFromFloat(spec.Price)
	switch spec.Kind {
	case "", "standard":
		return product.New(spec.Name, price, spec.Quantity)
	case "unlimited":
		return product.NewUnlimited(spec.Name, price)
	case "capped":
		return product.NewCapped(spec.Name, price, spec.Quantity, spec.MaxPerOrder)
	default:
		return nil, fmt.Errorf("product %q: unknown kind %q", spec.Name, spec.Kind)
	}
}
