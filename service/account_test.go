package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeMailer struct {
	enabled bool
	sent    []string
	err     error
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) SendWelcomeEmail(toEmail, name string) error {
	m.sent = append(m.sent, toEmail)
	return m.err
}

func TestAccountService_Register(t *testing.T) {
	mailer := &fakeMailer{enabled: true}
	svc := NewAccountService(newTestDB(t), mailer)
	ctx := context.Background()

	first, err := svc.Register(ctx, "Julia", " Julia@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "julia@example.com", first.Email)
	assert.NotEqual(t, "password123", first.Password)
	assert.True(t, first.IsAdmin, "首个用户为管理员")
	assert.Equal(t, []string{"julia@example.com"}, mailer.sent)

	second, err := svc.Register(ctx, "Jacques", "jacques@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, second.IsAdmin)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	svc := NewAccountService(newTestDB(t), nil)
	ctx := context.Background()

	first, err := svc.Register(ctx, "Julia", "julia@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "JULIA@example.com", "other-password")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// 第一个用户不受影响
	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Julia", got.Name)
	_, err = svc.Login(ctx, "julia@example.com", "password123")
	assert.NoError(t, err)
}

func TestAccountService_Register_MailFailureIgnored(t *testing.T) {
	mailer := &fakeMailer{enabled: true, err: errors.New("smtp down")}
	svc := NewAccountService(newTestDB(t), mailer)

	_, err := svc.Register(context.Background(), "Julia", "julia@example.com", "password123")
	assert.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
}

func TestAccountService_Register_Invalid(t *testing.T) {
	svc := NewAccountService(newTestDB(t), &fakeMailer{})
	_, err := svc.Register(context.Background(), "", "a@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Register(context.Background(), "A", "a@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAccountService_Login(t *testing.T) {
	svc := NewAccountService(newTestDB(t), nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Julia", "julia@example.com", "password123")
	require.NoError(t, err)

	got, err := svc.Login(ctx, "JULIA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// 密码错误与邮箱不存在返回同一错误
	_, errWrongPassword := svc.Login(ctx, "julia@example.com", "wrong")
	_, errUnknownEmail := svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountService_Login_UnknownEmailPaysBcrypt(t *testing.T) {
	svc := NewAccountService(newTestDB(t), nil)

	_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 比对用的哈希与真实密码同等成本
	cost, err := bcrypt.Cost(dummyPasswordHash())
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.Error(t, bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte("password123")))
}
