package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuDish 菜品配料行，一道菜由所有同名 dish_name 的行组成
type MenuDish struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	DishName       string          `json:"dish_name" gorm:"size:100;not null;index"`
	IngredientName string          `json:"ingredient_name" gorm:"size:100;not null"`
	// FoodItemID 添加时解析到的库存记录
	FoodItemID     uint            `json:"food_item_id" gorm:"index"`
	// ServingSize 份量（盎司）
	ServingSize    decimal.Decimal `json:"serving_size" gorm:"type:decimal(20,8);not null"`
	// PortionCost 份量 * 每盎司成本，不舍入
	PortionCost    decimal.Decimal `json:"portion_cost" gorm:"type:decimal(28,10);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName 设置表名
func (MenuDish) TableName() string {
	return "menu_dishes"
}
