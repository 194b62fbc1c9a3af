package service

import (
	"context"
	"fmt"

	"Yuyu_Weibo/internal/model"
	"Yuyu_Weibo/internal/pkg"
	"Yuyu_Weibo/internal/repository/mysql"
	"Yuyu_Weibo/internal/repository/redis"
)

type UserService struct {
	repo     *mysql.UserRepository
	sessions *redis.SessionRepository
}

func NewUserService() *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: mysql.DB},
		sessions: &redis.SessionRepository{},
	}
}

// Register 注册成功即视为登录，直接发一对 token（与登录同一套会话逻辑）。
// 邮箱已被占用时存储层返回 ErrConflict，原样上抛。
func (s *UserService) Register(ctx context.Context, username, email, password string) (uint64, *pkg.Pair, error) {
	if username == "" || email == "" || password == "" {
		return 0, nil, fmt.Errorf("%w: username/email/password required", ErrInvalidArgument)
	}

	hash, err := pkg.HashPassword(password, pkg.PasswordSalt)
	if err != nil {
		return 0, nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return 0, nil, err
	}

	pair, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return 0, nil, err
	}
	return user.ID, pair, nil
}

// Login 按 (email, hash) 精确匹配；匹配不到统一是 mysql.ErrNotFound
func (s *UserService) Login(ctx context.Context, email, password string) (uint64, *pkg.Pair, error) {
	if email == "" || password == "" {
		return 0, nil, fmt.Errorf("%w: email/password required", ErrInvalidArgument)
	}

	hash, err := pkg.HashPassword(password, pkg.PasswordSalt)
	if err != nil {
		return 0, nil, err
	}

	userID, err := s.repo.Authenticate(ctx, email, hash)
	if err != nil {
		return 0, nil, err
	}

	pair, err := s.issueSession(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	return userID, pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.sessions.Delete(ctx, userID)
}

// Refresh 换新 token 对并刷新白名单
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	pair, userID, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, userID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// UpdateProfile 两个字段都写入，空串语义由调用方把关；
// 这里只拦两个都为空的请求
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, username, avatar string) error {
	if userID == 0 {
		return fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	if username == "" && avatar == "" {
		return fmt.Errorf("%w: nothing to update", ErrInvalidArgument)
	}
	return s.repo.UpdateProfile(ctx, userID, username, avatar)
}

func (s *UserService) GetInfo(ctx context.Context, userID uint64) (*mysql.UserInfo, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	return s.repo.GetInfo(ctx, userID)
}

func (s *UserService) issueSession(ctx context.Context, userID uint64) (*pkg.Pair, error) {
	pair, err := pkg.GeneratePair(userID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, userID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}
