// Package pricing 成本计算：批量进货价折算每盎司成本、份量成本与建议售价。
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// DefaultFoodCostRatio 默认目标食材成本率（30%）
	DefaultFoodCostRatio = 0.30
	// OuncesPerPound 每磅盎司数
	OuncesPerPound = 16
	// Places 每盎司成本与展示金额保留的小数位
	Places = 2
)

var (
	// ErrInvalidInput 输入无效（重量必须大于 0，金额不能为负）
	ErrInvalidInput = errors.New("输入无效")
	// ErrDivisionUndefined 食材成本率为 0，无法推算售价
	ErrDivisionUndefined = errors.New("食材成本率为 0，无法计算建议售价")
)

var ouncesPerPound = decimal.NewFromInt(OuncesPerPound)

// UnitCost 每盎司成本 = 批量价格 / (批量重量(磅) * 16)，结果向上取两位小数
func UnitCost(bulkCost, bulkWeightLbs decimal.Decimal) (decimal.Decimal, error) {
	if !bulkWeightLbs.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: 重量必须大于 0", ErrInvalidInput)
	}
	if bulkCost.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: 价格不能为负", ErrInvalidInput)
	}
	return bulkCost.Div(bulkWeightLbs.Mul(ouncesPerPound)).RoundUp(Places), nil
}

// PortionCost 份量成本，不做舍入
func PortionCost(servingSize, unitCost decimal.Decimal) decimal.Decimal {
	return servingSize.Mul(unitCost)
}

// Calculator 按目标食材成本率推算售价
type Calculator struct {
	ratio decimal.Decimal
}

// NewCalculator 创建计算器，ratio 为目标食材成本率，如 0.30
func NewCalculator(ratio float64) *Calculator {
	return &Calculator{ratio: decimal.NewFromFloat(ratio)}
}

// Default 使用默认成本率的计算器
func Default() *Calculator {
	return NewCalculator(DefaultFoodCostRatio)
}

// Ratio 当前成本率
func (c *Calculator) Ratio() decimal.Decimal {
	return c.ratio
}

// SuggestedPrice 建议售价 = 成本 / 成本率
func (c *Calculator) SuggestedPrice(cost decimal.Decimal) (decimal.Decimal, error) {
	if c.ratio.IsZero() {
		return decimal.Zero, ErrDivisionUndefined
	}
	return cost.Div(c.ratio), nil
}

// Money 金额展示格式，如 $0.13
func Money(v decimal.Decimal) string {
	return "$" + v.StringFixed(Places)
}
