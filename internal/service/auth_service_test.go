package service

import (
	"errors"
	"testing"
	"time"
	"sysdesign_backend/internal/config"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/repository"
	"sysdesign_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "unit-test-secret-0123456789abcdef"

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegister(t *testing.T) {
	svc := newAuthFixture(t)

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22"}
	token, err := svc.Register(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 明文密码不落库
	assert.NotEqual(t, "hunter22", user.Password)
	assert.Equal(t, model.RoleUser, user.Role)

	claims, err := util.ParseJWT(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Register(&model.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(&model.User{Name: "Imposter", Email: "ada@example.com", Password: "other"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Register(&model.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	token, user, err := svc.Login("ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.False(t, user.LastLogin.IsZero())

	// 密码错误和用户不存在返回同一个错误，不泄露账户是否存在
	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, _, err = svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginSurvivesLastLoginWriteFailure(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = time.Hour
	svc := NewAuthService(repository.NewUserRepository(db), cfg)

	_, err := svc.Register(&model.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	// 让 users 表的更新全部失败，模拟登录时刻的写故障
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("users_read_only", func(tx *gorm.DB) {
		if tx.Statement.Table == "users" {
			tx.AddError(errors.New("users table is read only"))
		}
	}))

	token, user, err := svc.Login("ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
}
