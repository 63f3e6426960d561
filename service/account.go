package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"costchef/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash 邮箱不存在时用于比对的固定哈希，成本与真实密码一致
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("costchef-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// Mailer 注册成功后发送欢迎邮件
type Mailer interface {
	Enabled() bool
	SendWelcomeEmail(toEmail, name string) error
}

// AccountService 用户注册与登录
type AccountService struct {
	db     *gorm.DB
	mailer Mailer
}

// NewAccountService 创建账号服务，mailer 可为 nil
func NewAccountService(db *gorm.DB, mailer Mailer) *AccountService {
	return &AccountService{db: db, mailer: mailer}
}

// NormalizeEmail 邮箱去空格并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 注册新用户；邮箱已存在返回 ErrEmailTaken
// 第一个注册的用户成为管理员
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: 姓名、邮箱和密码不能为空", ErrInvalidInput)
	}

	db := s.db.WithContext(ctx)

	// 检查邮箱是否已存在（包含已删除账号，唯一索引仍然生效）
	var existing models.User
	err := db.Unscoped().Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	var userCount int64
	if err := db.Unscoped().Model(&models.User{}).Count(&userCount).Error; err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		IsAdmin:  userCount == 0,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	if s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("警告: 欢迎邮件发送失败 (%s): %v", user.Email, err)
		}
	}
	return &user, nil
}

// Login 校验邮箱与密码；邮箱不存在与密码错误统一返回 ErrInvalidCredentials
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 与密码错误分支付出相同的 bcrypt 开销
		bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Get 按 ID 获取用户
func (s *AccountService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}
