package repository

import (
	"context"
	"errors"

	"github.com/blues/spacedao/internal/model"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// Storage SpaceDAO 的数据访问接口
type Storage interface {
	// 用户
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*model.User, error)
	CreateUser(ctx context.Context, user model.User) (*model.User, error)

	// 任务
	ListMissions(ctx context.Context) ([]model.Mission, error)
	GetMission(ctx context.Context, id int64) (*model.Mission, error)
	CreateMission(ctx context.Context, in model.MissionInput) (*model.Mission, error)
	UpdateMission(ctx context.Context, id int64, patch model.MissionPatch) (*model.Mission, error)
	DeleteMission(ctx context.Context, id int64) error

	// 提案
	ListProposals(ctx context.Context) ([]model.Proposal, error)
	GetProposal(ctx context.Context, id int64) (*model.Proposal, error)
	CreateProposal(ctx context.Context, in model.ProposalInput) (*model.Proposal, error)
	UpdateProposal(ctx context.Context, id int64, patch model.ProposalPatch) (*model.Proposal, error)
	VoteOnProposal(ctx context.Context, id int64, side model.VoteSide, weight float64) (*model.Proposal, error)
	DeleteProposal(ctx context.Context, id int64) error

	// 份额，ownerAddress 为空时返回全部
	ListNFTs(ctx context.Context, ownerAddress string) ([]model.NFT, error)
	GetNFT(ctx context.Context, id int64) (*model.NFT, error)
	CreateNFT(ctx context.Context, in model.NFTInput) (*model.NFT, error)
	UpdateNFT(ctx context.Context, id int64, patch model.NFTPatch) (*model.NFT, error)
	DeleteNFT(ctx context.Context, id int64) error

	// 统计，只有一行，不支持创建和删除
	GetStats(ctx context.Context) (*model.Stats, error)
	UpdateStats(ctx context.Context, patch model.StatsPatch) (*model.Stats, error)

	Close() error
}
