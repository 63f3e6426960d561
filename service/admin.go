package service

import (
	"context"
	"errors"
	"fmt"

	"costchef/models"

	"gorm.io/gorm"
)

// AdminService 后台数据维护，仅管理员可用
type AdminService struct {
	db   *gorm.DB
	menu *MenuService
}

// NewAdminService 创建后台服务
func NewAdminService(db *gorm.DB, menu *MenuService) *AdminService {
	return &AdminService{db: db, menu: menu}
}

// ListUsers 所有用户
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

// ListFoodItems 所有库存记录（含重复名称）
func (s *AdminService) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// ListMenuDishes 所有配料行
func (s *AdminService) ListMenuDishes(ctx context.Context) ([]models.MenuDish, error) {
	var lines []models.MenuDish
	err := s.db.WithContext(ctx).Order("dish_name ASC, id ASC").Find(&lines).Error
	return lines, err
}

// ListMenuNumbers 所有菜品汇总
func (s *AdminService) ListMenuNumbers(ctx context.Context) ([]models.MenuNumbers, error) {
	var rows []models.MenuNumbers
	err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

// DeleteFoodItem 删除库存记录（软删除）
func (s *AdminService) DeleteFoodItem(ctx context.Context, id uint) error {
	return s.delete(ctx, &models.FoodItem{}, id)
}

// DeleteMenuDish 删除配料行（软删除），同一事务内同步该菜品的汇总
func (s *AdminService) DeleteMenuDish(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line models.MenuDish
		err := tx.First(&line, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		if err != nil {
			return fmt.Errorf("查询配料失败: %w", err)
		}

		if err := tx.Delete(&line).Error; err != nil {
			return fmt.Errorf("删除失败: %w", err)
		}
		return s.menu.refreshNumbers(tx, line.DishName)
	})
}

// DeleteMenuNumbers 删除菜品汇总
func (s *AdminService) DeleteMenuNumbers(ctx context.Context, id uint) error {
	return s.delete(ctx, &models.MenuNumbers{}, id)
}

func (s *AdminService) delete(ctx context.Context, model interface{}, id uint) error {
	result := s.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("删除失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
