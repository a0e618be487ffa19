package logic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserLogic 用户业务逻辑
type UserLogic struct {
	storage repository.Storage
	cost    int

	// 保证唯一性检查和创建之间不被其他注册插入
	mu sync.Mutex
}

// NewUserLogic 创建用户业务逻辑
func NewUserLogic(storage repository.Storage) *UserLogic {
	return &UserLogic{storage: storage, cost: bcrypt.DefaultCost}
}

// Register 注册用户，用户名和钱包地址都必须唯一
func (l *UserLogic) Register(ctx context.Context, in model.UserInput) (*model.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.storage.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if in.WalletAddress != nil && *in.WalletAddress != "" {
		if _, err := l.storage.GetUserByWalletAddress(ctx, *in.WalletAddress); err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("查询用户失败: %w", err)
		}
	} else {
		in.WalletAddress = nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), l.cost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	return l.storage.CreateUser(ctx, model.User{
		Username:      in.Username,
		Password:      string(hash),
		WalletAddress: in.WalletAddress,
	})
}

// GetUser 获取用户
func (l *UserLogic) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return l.storage.GetUser(ctx, id)
}

// GetUserByWalletAddress 根据钱包地址获取用户
func (l *UserLogic) GetUserByWalletAddress(ctx context.Context, address string) (*model.User, error) {
	return l.storage.GetUserByWalletAddress(ctx, address)
}

// Authenticate 校验用户名和密码
func (l *UserLogic) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := l.storage.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
