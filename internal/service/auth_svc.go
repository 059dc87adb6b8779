package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/middleware"
	"hexshop_dev_v1_202509/internal/model"
	"hexshop_dev_v1_202509/internal/repository"
)

// ==================== AuthService 會員認證服務 ====================

// AuthService 會員認證服務
type AuthService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

// NewAuthService 建立認證服務
func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, log: log}
}

// Signup 註冊新會員
// Email 重複回 ErrEmailTaken；密碼以 bcrypt 加鹽雜湊後存放，回應不含密碼
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserInfo, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("查詢 Email 失敗: %w", err)
	}
	if exists {
		s.log.Warn("建立使用者錯誤: Email 已被使用", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密碼雜湊失敗: %w", err)
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("建立使用者失敗: %w", err)
	}

	s.log.Info("新建立的使用者", zap.Int64("id", user.ID))

	return &dto.UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Signin 會員登入
// 帳號不存在與密碼錯誤回同一個 ErrInvalidCredentials，不洩漏是哪一種
func (s *AuthService) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.SigninResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("查詢使用者失敗: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("簽發 token 失敗: %w", err)
	}

	return &dto.SigninResult{
		Token: token,
		User: dto.SigninUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
