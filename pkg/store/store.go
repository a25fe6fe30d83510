// Package store implements the catalog and the multi-line order workflow.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"bestbuy/pkg/otel"
	"bestbuy/pkg/product"
)

// ErrNotFound indicates the product is not in the catalog.
var ErrNotFound = errors.New("product not found")

// Line is one cart entry: a product and the quantity requested.
type Line struct {
	Product  *product.Product
	Quantity int
}

// Cart is the transient shopping list submitted as a single order.
type Cart []Line

// SkippedLine reports a cart line that could not be fulfilled.
type SkippedLine struct {
	Line
	Reason error
}

// Store owns the product catalog and orchestrates orders. Methods are safe
// for concurrent use; Order holds the lock for the whole cart pass.
type Store struct {
	mu       sync.Mutex
	products []*product.Product
}

// New returns a Store stocked with the given products, preserving order.
func New(products ...*product.Product) *Store {
	return &Store{products: products}
}

// AddProduct appends a product to the catalog.
func (s *Store) AddProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// RemoveProduct removes a product from the catalog by identity. It returns
// ErrNotFound when the product is not in the catalog.
func (s *Store) RemoveProduct(p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.products {
		if existing.ID() == p.ID() {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// TotalQuantity returns the summed stock across the catalog, computed on
// demand. Unlimited products contribute 0: their stock is undefined.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the active products in catalog insertion order.
func (s *Store) ActiveProducts() []*product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

// Order processes the cart lines in submitted order and returns the total
// charge of the successful lines. A line that fails its stock or limit
// check is skipped and reported, never fatal: the order collects whatever
// it can from the remaining lines. Failed lines leave their product's
// stock unchanged.
func (s *Store) Order(ctx context.Context, cart Cart) (decimal.Decimal, []SkippedLine) {
	_, span := otel.AddSpan(ctx, "store.order")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	var skipped []SkippedLine
	for _, line := range cart {
		charge, err := line.Product.Buy(line.Quantity)
		if err != nil {
			skipped = append(skipped, SkippedLine{Line: line, Reason: err})
			continue
		}
		total = total.Add(charge)
	}
	return total, skipped
}
