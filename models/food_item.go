package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodItem 库存食材，每盎司成本由批量价格折算得出
// 同名食材允许重复录入，按名称查找时取最早的一条
type FoodItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ItemName   string          `json:"item_name" gorm:"size:100;not null;index"`
	ItemCostOz decimal.Decimal `json:"item_cost_oz" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName 设置表名
func (FoodItem) TableName() string {
	return "food_items"
}
