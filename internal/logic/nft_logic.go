package logic

import (
	"context"
	"fmt"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

// NFTLogic 份额业务逻辑
type NFTLogic struct {
	storage repository.Storage
}

// NewNFTLogic 创建份额业务逻辑
func NewNFTLogic(storage repository.Storage) *NFTLogic {
	return &NFTLogic{storage: storage}
}

// GetNFTs 获取份额列表，owner 为空时返回全部
func (l *NFTLogic) GetNFTs(ctx context.Context, owner string) ([]model.NFT, error) {
	nfts, err := l.storage.ListNFTs(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("获取份额列表失败: %w", err)
	}
	return nfts, nil
}

// GetNFT 获取份额详情
func (l *NFTLogic) GetNFT(ctx context.Context, id int64) (*model.NFT, error) {
	return l.storage.GetNFT(ctx, id)
}

// CreateNFT 创建份额
func (l *NFTLogic) CreateNFT(ctx context.Context, in model.NFTInput) (*model.NFT, error) {
	return l.storage.CreateNFT(ctx, in)
}

// UpdateNFT 部分更新份额
func (l *NFTLogic) UpdateNFT(ctx context.Context, id int64, patch model.NFTPatch) (*model.NFT, error) {
	return l.storage.UpdateNFT(ctx, id, patch)
}

// DeleteNFT 删除份额
func (l *NFTLogic) DeleteNFT(ctx context.Context, id int64) error {
	return l.storage.DeleteNFT(ctx, id)
}
