package promotion_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bestbuy/pkg/promotion"
)

func TestSecondHalfPricePairing(t *testing.T) {
	p := promotion.NewSecondHalfPrice("Second Half price!")
	price := decimal.NewFromInt(10)

	cases := []struct {
		quantity int
		want     string
	}{
		{1, "10"},  // lone unit gets no discount
		{2, "15"},  // 10 + 5
		{3, "25"},  // 10 + 5 + 10
		{4, "30"},  // two pairs
		{5, "40"},  // two pairs + one full
	}
	for _, c := range cases {
		got := p.Apply(price, c.quantity)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"quantity %d: got %s, want %s", c.quantity, got, c.want)
	}
}

func TestThirdOneFree(t *testing.T) {
	p := promotion.NewThirdOneFree("Third One Free!")

	got := p.Apply(decimal.NewFromInt(30), 3)
	require.True(t, got.Equal(decimal.NewFromInt(60)), "pay for 2 of 3, got %s", got)

	got = p.Apply(decimal.NewFromInt(10), 9)
	require.True(t, got.Equal(decimal.NewFromInt(60)), "pay for 6 of 9, got %s", got)
}

func TestPercentOff(t *testing.T) {
	p := promotion.NewPercentOff("30% off!", decimal.NewFromInt(30))

	got := p.Apply(decimal.NewFromInt(100), 2)
	require.True(t, got.Equal(decimal.NewFromInt(140)), "got %s", got)
}

func TestPercentOffNotClamped(t *testing.T) {
	p := promotion.NewPercentOff("150% off!", decimal.NewFromInt(150))

	got := p.Apply(decimal.NewFromInt(100), 1)
	assert.True(t, got.IsNegative(), "out-of-range percent propagates, got %s", got)
}

func TestApplyIsPure(t *testing.T) {
	p := promotion.NewThirdOneFree("Third One Free!")
	price := decimal.NewFromInt(30)

	first := p.Apply(price, 3)
	second := p.Apply(price, 3)
	require.True(t, first.Equal(second), "repeated Apply differs: %s vs %s", first, second)
}
