// Package product implements catalog entries with stock and activation state.
package product

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bestbuy/pkg/promotion"
)

// Kind distinguishes how a product tracks stock and limits purchases.
type Kind int

const (
	// Standard products deplete stock on purchase.
	Standard Kind = iota
	// Unlimited products never deplete and are always purchasable.
	Unlimited
	// Capped products deplete stock but reject any single purchase above
	// their per-order maximum.
	Capped
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Unlimited:
		return "unlimited"
	case Capped:
		return "capped"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Product is a sellable catalog entry. All fields are private; mutation goes
// through methods so the activation invariant (active iff unlimited or
// stock > 0) and the non-negative stock invariant always hold.
type Product struct {
	id          uuid.UUID
	name        string
	price       decimal.Decimal
	quantity    int
	active      bool
	kind        Kind
	maxPerOrder int
	promo       *promotion.Promotion
}

// New creates a standard stock-tracked product.
func New(name string, price decimal.Decimal, quantity int) (*Product, error) {
	return newProduct(name, price, quantity, Standard, 0)
}

// NewUnlimited creates a product with no finite stock, e.g. a software
// license. It is always active and purchases never deplete it.
func NewUnlimited(name string, price decimal.Decimal) (*Product, error) {
	return newProduct(name, price, 0, Unlimited, 0)
}

// NewCapped creates a stock-tracked product that rejects any single
// purchase of more than maxPerOrder units.
func NewCapped(name string, price decimal.Decimal, quantity, maxPerOrder int) (*Product, error) {
	if maxPerOrder <= 0 {
		return nil, fmt.Errorf("%w: per-order maximum must be positive, got %d", ErrInvalidArgument, maxPerOrder)
	}
	return newProduct(name, price, quantity, Capped, maxPerOrder)
}

func newProduct(name string, price decimal.Decimal, quantity int, kind Kind, maxPerOrder int) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrInvalidArgument)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: product price cannot be negative, got %s", ErrInvalidArgument, price)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: product quantity cannot be negative, got %d", ErrInvalidArgument, quantity)
	}
	p := &Product{
		id:          uuid.New(),
		name:        name,
		price:       price,
		quantity:    quantity,
		kind:        kind,
		maxPerOrder: maxPerOrder,
	}
	p.refreshActive()
	return p, nil
}

// ID returns the product's catalog identity.
func (p *Product) ID() uuid.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Kind returns the product variant.
func (p *Product) Kind() Kind { return p.kind }

// MaxPerOrder returns the per-order purchase maximum, 0 for uncapped kinds.
func (p *Product) MaxPerOrder() int { return p.maxPerOrder }

// Quantity returns the current stock. Unlimited products report 0: their
// stock level is undefined, not empty, and they stay purchasable.
func (p *Product) Quantity() int { return p.quantity }

// SetQuantity replaces the stock level and re-derives the active flag.
// Negative quantities are rejected. For unlimited products this is a no-op.
func (p *Product) SetQuantity(quantity int) error {
	if p.kind == Unlimited {
		return nil
	}
	if quantity < 0 {
		return fmt.Errorf("%w: product quantity cannot be negative, got %d", ErrInvalidArgument, quantity)
	}
	p.quantity = quantity
	p.refreshActive()
	return nil
}

// IsActive reports whether the product is listed and orderable.
func (p *Product) IsActive() bool { return p.active }

// Activate marks the product active regardless of stock. Catalog curation
// escape hatch; the purchase and SetQuantity paths re-derive the flag.
func (p *Product) Activate() { p.active = true }

// Deactivate marks the product inactive regardless of stock.
func (p *Product) Deactivate() { p.active = false }

// Promotion returns the attached promotion, or nil when none is attached.
func (p *Product) Promotion() *promotion.Promotion { return p.promo }

// SetPromotion attaches a promotion, replacing any existing one. At most
// one promotion is attached at a time.
func (p *Product) SetPromotion(promo promotion.Promotion) {
	p.promo = &promo
}

// ClearPromotion detaches the promotion, if any.
func (p *Product) ClearPromotion() { p.promo = nil }

// Buy purchases quantity units, depletes stock for stock-tracked kinds and
// returns the charge, applying the attached promotion when present. Any
// failure leaves stock unchanged:
//
//   - ErrInvalidArgument for non-positive quantities,
//   - ErrLimitExceeded when a capped product's per-order maximum is exceeded
//     (checked before stock, even if stock would suffice),
//   - ErrInsufficientStock when stock cannot cover the request.
func (p *Product) Buy(quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, fmt.Errorf("%w: purchase quantity must be positive, got %d", ErrInvalidArgument, quantity)
	}
	if p.kind == Capped && quantity > p.maxPerOrder {
		return decimal.Zero, fmt.Errorf("%w: %s allows at most %d per order, got %d",
			ErrLimitExceeded, p.name, p.maxPerOrder, quantity)
	}
	if p.kind != Unlimited && quantity > p.quantity {
		return decimal.Zero, fmt.Errorf("%w: only %d of %s left in stock",
			ErrInsufficientStock, p.quantity, p.name)
	}

	charge := p.price.Mul(decimal.NewFromInt(int64(quantity)))
	if p.promo != nil {
		charge = p.promo.Apply(p.price, quantity)
	}
	if p.kind != Unlimited {
		p.quantity -= quantity
		p.refreshActive()
	}
	return charge, nil
}

// String returns a one-line summary for listings.
func (p *Product) String() string {
	s := fmt.Sprintf("%s, Price: %s", p.name, p.price)
	if p.promo != nil {
		s += fmt.Sprintf(", Promotion: %s", p.promo.Name())
	}
	switch p.kind {
	case Unlimited:
		s += ", Quantity: Unlimited"
	case Capped:
		s += fmt.Sprintf(", Quantity: %d, Limit: %d per order", p.quantity, p.maxPerOrder)
	default:
		s += fmt.Sprintf(", Quantity: %d", p.quantity)
	}
	return s
}

// active iff unlimited or stock remains
func (p *Product) refreshActive() {
	p.active = p.kind == Unlimited || p.quantity > 0
}
