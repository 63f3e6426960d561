package api

import (
	"costchef/service"
)

// KitchenHandler 库存、菜品与菜单页面
type KitchenHandler struct {
	svc *service.Services
}

// NewKitchenHandler 创建处理器
func NewKitchenHandler(svc *service.Services) *KitchenHandler {
	return &KitchenHandler{svc: svc}
}
