// Package promotion implements the pricing rules a product can carry.
package promotion

import "github.com/shopspring/decimal"

// Kind enumerates the supported promotion rules.
type Kind string

const (
	// KindSecondHalfPrice charges half price for the second unit of each pair.
	KindSecondHalfPrice Kind = "second_half_price"
	// KindThirdOneFree makes every third unit free.
	KindThirdOneFree Kind = "third_one_free"
	// KindPercentOff applies a flat percentage discount to every unit.
	KindPercentOff Kind = "percent_off"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Promotion is an immutable pricing rule. The zero value is not usable;
// construct with NewSecondHalfPrice, NewThirdOneFree or NewPercentOff.
// Promotions carry no per-product state, so value copies are safe.
type Promotion struct {
	name    string
	kind    Kind
	percent decimal.Decimal
}

// NewSecondHalfPrice returns the half-price-second-unit rule.
func NewSecondHalfPrice(name string) Promotion {
	return Promotion{name: name, kind: KindSecondHalfPrice}
}

// NewThirdOneFree returns the every-third-unit-free rule.
func NewThirdOneFree(name string) Promotion {
	return Promotion{name: name, kind: KindThirdOneFree}
}

// NewPercentOff returns a flat percentage discount. The percent is expected
// in [0, 100] but is not clamped; out-of-range values propagate into the
// computed charge and are the caller's responsibility.
func NewPercentOff(name string, percent decimal.Decimal) Promotion {
	return Promotion{name: name, kind: KindPercentOff, percent: percent}
}

// Name returns the display name of the promotion.
func (p Promotion) Name() string { return p.name }

// Kind returns the rule kind.
func (p Promotion) Kind() Kind { return p.kind }

// Apply computes the total charge for quantity units at the given unit
// price under this rule. It is a pure function: no state is read or
// written besides the arguments and the rule's own parameters.
func (p Promotion) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	switch p.kind {
	case KindSecondHalfPrice:
		// Full price for the first unit of each pair, half price for the
		// second; an odd final unit is full price.
		pairs := decimal.NewFromInt(int64(quantity / 2))
		remainder := decimal.NewFromInt(int64(quantity % 2))
		return unitPrice.Mul(pairs).
			Add(unitPrice.Div(two).Mul(pairs)).
			Add(unitPrice.Mul(remainder))
	case KindThirdOneFree:
		payable := decimal.NewFromInt(int64(quantity - quantity/3))
		return unitPrice.Mul(payable)
	case KindPercentOff:
		factor := decimal.NewFromInt(1).Sub(p.percent.Div(hundred))
		return unitPrice.Mul(factor).Mul(qty)
	default:
		return unitPrice.Mul(qty)
	}
}
