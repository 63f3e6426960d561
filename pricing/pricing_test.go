package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUnitCost(t *testing.T) {
	tests := []struct {
		name   string
		cost   string
		weight string
		want   string
	}{
		{"0.125 向上取整为 0.13", "10.00", "5.00", "0.13"},
		{"整除不变", "16.00", "1", "1"},
		{"极小余数也进位", "10.00", "3", "0.21"},
		{"零价格", "0", "2", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnitCost(d(tt.cost), d(tt.weight))
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestUnitCost_InvalidInput(t *testing.T) {
	_, err := UnitCost(d("10"), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = UnitCost(d("10"), d("-1"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = UnitCost(d("-10"), d("1"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPortionCost(t *testing.T) {
	assert.True(t, PortionCost(d("2"), d("0.13")).Equal(d("0.26")))
	// 不做中间舍入
	assert.True(t, PortionCost(d("1.5"), d("0.13")).Equal(d("0.195")))
}

func TestCalculator_SuggestedPrice(t *testing.T) {
	c := Default()
	assert.True(t, c.Ratio().Equal(d("0.3")))

	price, err := c.SuggestedPrice(d("0.26"))
	require.NoError(t, err)
	assert.True(t, price.Round(4).Equal(d("0.8667")), "got %s", price)

	price, err = c.SuggestedPrice(d("0.52"))
	require.NoError(t, err)
	assert.Equal(t, "1.73", price.StringFixed(2))

	// 可调整成本率
	price, err = NewCalculator(0.25).SuggestedPrice(d("1"))
	require.NoError(t, err)
	assert.True(t, price.Equal(d("4")))
}

func TestCalculator_ZeroRatio(t *testing.T) {
	_, err := NewCalculator(0).SuggestedPrice(d("1"))
	assert.ErrorIs(t, err, ErrDivisionUndefined)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.13", Money(d("0.13")))
	assert.Equal(t, "$1.73", Money(d("1.7333")))
}
