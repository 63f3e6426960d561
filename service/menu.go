package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"costchef/models"
	"costchef/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MenuService 菜品汇总：总成本与建议售价
type MenuService struct {
	db   *gorm.DB
	calc *pricing.Calculator
}

// NewMenuService 创建菜品汇总服务
func NewMenuService(db *gorm.DB, calc *pricing.Calculator) *MenuService {
	return &MenuService{db: db, calc: calc}
}

// MenuLine 菜单列表行
type MenuLine struct {
	Name      string          `json:"name"`
	FoodCost  decimal.Decimal `json:"food_cost"`
	MenuPrice decimal.Decimal `json:"menu_price"`
}

// ComputeMenuNumbers 汇总菜品所有配料成本并推算建议售价，结果按菜名覆盖保存
// 汇总与写入在同一事务内，写入为按 name 唯一索引的 upsert，每个菜名至多一行
func (s *MenuService) ComputeMenuNumbers(ctx context.Context, dishName string) (*models.MenuNumbers, error) {
	dishName = strings.TrimSpace(dishName)
	if dishName == "" {
		return nil, fmt.Errorf("%w: 菜品名称不能为空", ErrInvalidInput)
	}

	var numbers *models.MenuNumbers
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		numbers, err = s.saveNumbers(tx, dishName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// saveNumbers 在 tx 内汇总并 upsert，菜品没有配料行时返回 ErrDishNotFound
func (s *MenuService) saveNumbers(tx *gorm.DB, dishName string) (*models.MenuNumbers, error) {
	var total decimal.NullDecimal
	row := tx.Model(&models.MenuDish{}).
		Select("SUM(portion_cost)").
		Where("dish_name = ?", dishName).
		Row()
	if err := row.Scan(&total); err != nil {
		return nil, fmt.Errorf("汇总菜品成本失败: %w", err)
	}
	if !total.Valid {
		return nil, ErrDishNotFound
	}

	price, err := s.calc.SuggestedPrice(total.Decimal)
	if err != nil {
		return nil, err
	}

	numbers := models.MenuNumbers{
		Name:      dishName,
		FoodCost:  total.Decimal.Round(pricing.Places),
		MenuPrice: price.Round(pricing.Places),
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"food_cost", "menu_price", "updated_at"}),
	}).Create(&numbers).Error; err != nil {
		return nil, fmt.Errorf("保存菜品汇总失败: %w", err)
	}

	// 冲突更新时驱动回填的 ID 不可靠，按名称读入新结构体
	var saved models.MenuNumbers
	if err := tx.Where("name = ?", dishName).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("读取菜品汇总失败: %w", err)
	}
	return &saved, nil
}

// refreshNumbers 配料行变动后同步已有的汇总：仍有配料则重算，没有则删除
// 尚未汇总过的菜品不做处理
func (s *MenuService) refreshNumbers(tx *gorm.DB, dishName string) error {
	var count int64
	if err := tx.Model(&models.MenuNumbers{}).Where("name = ?", dishName).Count(&count).Error; err != nil {
		return fmt.Errorf("查询菜品汇总失败: %w", err)
	}
	if count == 0 {
		return nil
	}

	_, err := s.saveNumbers(tx, dishName)
	if errors.Is(err, ErrDishNotFound) {
		return tx.Where("name = ?", dishName).Delete(&models.MenuNumbers{}).Error
	}
	return err
}

// ListMenuNumbers 列出所有已汇总菜品（名称, 总成本, 建议售价）
func (s *MenuService) ListMenuNumbers(ctx context.Context) ([]MenuLine, error) {
	var rows []models.MenuNumbers
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询菜单失败: %w", err)
	}

	lines := make([]MenuLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, MenuLine{Name: r.Name, FoodCost: r.FoodCost, MenuPrice: r.MenuPrice})
	}
	return lines, nil
}
