package service

import (
	"costchef/config"
	"costchef/pricing"

	"gorm.io/gorm"
)

// Services 应用上下文：持有各存储与计算组件，由路由注入到处理器
type Services struct {
	Calculator *pricing.Calculator
	Inventory  *InventoryService
	Dishes     *DishService
	Menu       *MenuService
	Accounts   *AccountService
	Admin      *AdminService
	Reports    *ReportService
	Email      *EmailService
}

// NewServices 组装所有服务
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	calc := pricing.NewCalculator(cfg.Pricing.FoodCostRatio)
	email := NewEmailService(&cfg.Email)
	inventory := NewInventoryService(db, calc)
	menu := NewMenuService(db, calc)

	return &Services{
		Calculator: calc,
		Inventory:  inventory,
		Dishes:     NewDishService(db, inventory),
		Menu:       menu,
		Accounts:   NewAccountService(db, email),
		Admin:      NewAdminService(db, menu),
		Reports:    NewReportService(inventory, menu),
		Email:      email,
	}
}
