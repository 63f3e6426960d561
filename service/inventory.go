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
)

// InventoryService 库存食材
type InventoryService struct {
	db   *gorm.DB
	calc *pricing.Calculator
}

// NewInventoryService 创建库存服务
func NewInventoryService(db *gorm.DB, calc *pricing.Calculator) *InventoryService {
	return &InventoryService{db: db, calc: calc}
}

// InventoryLine 库存列表行
type InventoryLine struct {
	Name      string          `json:"name"`
	CostPerOz decimal.Decimal `json:"cost_per_oz"`
}

// PortionQuote 单个食材按份量的成本与建议售价
type PortionQuote struct {
	Name        string          `json:"name"`
	PortionSize decimal.Decimal `json:"portion_size"`
	PortionCost decimal.Decimal `json:"portion_cost"`
	MenuPrice   decimal.Decimal `json:"menu_price"`
}

// AddItem 按批量价格与重量（磅）录入食材，输入按原值参与计算
func (s *InventoryService) AddItem(ctx context.Context, name string, bulkCost, bulkWeightLbs decimal.Decimal) (*models.FoodItem, error) {
	costPerOz, err := pricing.UnitCost(bulkCost, bulkWeightLbs)
	if err != nil {
		return nil, err
	}
	return s.AddItemCost(ctx, name, costPerOz)
}

// AddItemCost 直接以每盎司成本录入食材；同名不去重
func (s *InventoryService) AddItemCost(ctx context.Context, name string, costPerOz decimal.Decimal) (*models.FoodItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 食材名称不能为空", ErrInvalidInput)
	}
	if costPerOz.IsNegative() {
		return nil, fmt.Errorf("%w: 成本不能为负", ErrInvalidInput)
	}

	item := models.FoodItem{ItemName: name, ItemCostOz: costPerOz}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("创建食材失败: %w", err)
	}
	return &item, nil
}

// FindByName 按名称查找，同名时返回最早录入的一条
func (s *InventoryService) FindByName(ctx context.Context, name string) (*models.FoodItem, error) {
	var item models.FoodItem
	// First 按主键升序，即录入顺序
	err := s.db.WithContext(ctx).Where("item_name = ?", strings.TrimSpace(name)).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询食材失败: %w", err)
	}
	return &item, nil
}

// ListAll 列出所有库存（名称, 每盎司成本）
func (s *InventoryService) ListAll(ctx context.Context) ([]InventoryLine, error) {
	var items []models.FoodItem
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("查询库存失败: %w", err)
	}

	lines := make([]InventoryLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, InventoryLine{Name: item.ItemName, CostPerOz: item.ItemCostOz})
	}
	return lines, nil
}

// QuotePortion 计算某食材指定份量的成本与建议售价，不落库
func (s *InventoryService) QuotePortion(ctx context.Context, name string, portionSize decimal.Decimal) (*PortionQuote, error) {
	if portionSize.IsNegative() {
		return nil, fmt.Errorf("%w: 份量不能为负", ErrInvalidInput)
	}

	item, err := s.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	cost := pricing.PortionCost(portionSize, item.ItemCostOz)
	price, err := s.calc.SuggestedPrice(cost)
	if err != nil {
		return nil, err
	}
	return &PortionQuote{
		Name:        item.ItemName,
		PortionSize: portionSize,
		PortionCost: cost,
		MenuPrice:   price,
	}, nil
}
