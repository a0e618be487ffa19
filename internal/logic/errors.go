package logic

import "errors"

var (
	// ErrInvalidVote 投票方向不是 yes/no，或票数不是正数
	ErrInvalidVote = errors.New("invalid vote or amount")
	// ErrUserExists 用户名或钱包地址已被注册
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid username or password")
)
