package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuNumbers 菜品汇总：总食材成本与建议售价
// 按 name 唯一，重新计算时覆盖旧值，不做软删除
type MenuNumbers struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:100;not null;uniqueIndex"`
	FoodCost  decimal.Decimal `json:"food_cost" gorm:"type:decimal(10,2);not null"`
	MenuPrice decimal.Decimal `json:"menu_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (MenuNumbers) TableName() string {
	return "menu_numbers"
}
