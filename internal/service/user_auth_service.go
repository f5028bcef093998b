package service

import (
	"github.com/tokri-shop/internal/config"
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/models"
	"github.com/tokri-shop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// HashPassword 使用 bcrypt 加密密码
func (s *UserAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func (s *UserAuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Register 用户注册
func (s *UserAuthService) Register(form SignupForm) (*models.User, error) {
	passwordMin := 0
	if s.cfg != nil {
		passwordMin = s.cfg.Security.PasswordMinLength
	}
	if err := ValidateSignupForm(form, passwordMin); err != nil {
		return nil, err
	}

	normalized := NormalizeEmail(form.Email)
	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hash, err := s.HashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         form.Name,
		Email:        normalized,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Infow("user_registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Authenticate 用户登录校验
func (s *UserAuthService) Authenticate(form SigninForm) (*models.User, error) {
	if err := ValidateSigninForm(form); err != nil {
		return nil, err
	}

	normalized := NormalizeEmail(form.Email)
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	// 用户不存在与密码错误返回同一错误，避免暴露邮箱是否注册
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.VerifyPassword(user.PasswordHash, form.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	logger.Infow("user_signed_in", "user_id", user.ID)
	return user, nil
}
