package service

import (
	"context"
	"fmt"
	"strings"

	"costchef/models"
	"costchef/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DishService 菜品配料组合
type DishService struct {
	db        *gorm.DB
	inventory *InventoryService
}

// NewDishService 创建菜品服务
func NewDishService(db *gorm.DB, inventory *InventoryService) *DishService {
	return &DishService{db: db, inventory: inventory}
}

// AddIngredient 向菜品添加一行配料
// 配料必须已在库存中，否则返回 ErrItemNotFound 且不写入任何数据；重复添加同一配料会产生新行
func (s *DishService) AddIngredient(ctx context.Context, dishName, ingredientName string, servingSize decimal.Decimal) (*models.MenuDish, error) {
	dishName = strings.TrimSpace(dishName)
	ingredientName = strings.TrimSpace(ingredientName)
	if dishName == "" || ingredientName == "" {
		return nil, fmt.Errorf("%w: 菜品名称和配料名称不能为空", ErrInvalidInput)
	}
	if !servingSize.IsPositive() {
		return nil, fmt.Errorf("%w: 份量必须大于 0", ErrInvalidInput)
	}

	item, err := s.inventory.FindByName(ctx, ingredientName)
	if err != nil {
		return nil, err
	}

	line := models.MenuDish{
		DishName:       dishName,
		IngredientName: item.ItemName,
		FoodItemID:     item.ID,
		ServingSize:    servingSize,
		PortionCost:    pricing.PortionCost(servingSize, item.ItemCostOz),
	}
	if err := s.db.WithContext(ctx).Create(&line).Error; err != nil {
		return nil, fmt.Errorf("添加配料失败: %w", err)
	}
	return &line, nil
}

// DishExists 菜品是否至少有一行配料
func (s *DishService) DishExists(ctx context.Context, dishName string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.MenuDish{}).
		Where("dish_name = ?", strings.TrimSpace(dishName)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("查询菜品失败: %w", err)
	}
	return count > 0, nil
}

// ListIngredients 菜品的配料名称（去重，按首次添加顺序）
// 菜品不存在时返回 ErrDishNotFound
func (s *DishService) ListIngredients(ctx context.Context, dishName string) ([]string, error) {
	exists, err := s.DishExists(ctx, dishName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDishNotFound
	}

	var names []string
	if err := s.db.WithContext(ctx).Model(&models.MenuDish{}).
		Where("dish_name = ?", strings.TrimSpace(dishName)).
		Order("id ASC").
		Pluck("ingredient_name", &names).Error; err != nil {
		return nil, fmt.Errorf("查询配料失败: %w", err)
	}

	seen := make(map[string]bool, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		distinct = append(distinct, name)
	}
	return distinct, nil
}
