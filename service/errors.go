package service

import (
	"errors"

	"costchef/pricing"
)

var (
	// ErrInvalidInput 参数无效
	ErrInvalidInput = pricing.ErrInvalidInput
	// ErrItemNotFound 食材不在库存中
	ErrItemNotFound = errors.New("该食材不在库存中，请先添加到库存")
	// ErrDishNotFound 菜品尚未创建（没有任何配料行）
	ErrDishNotFound = errors.New("该菜品尚未创建")
	// ErrEmailTaken 邮箱已注册
	ErrEmailTaken = errors.New("该邮箱已注册，请直接登录")
	// ErrInvalidCredentials 邮箱或密码错误，不区分具体原因
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("用户不存在")
	// ErrRecordNotFound 记录不存在
	ErrRecordNotFound = errors.New("记录不存在")
)
