package logic

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

// ProposalLogic 提案业务逻辑
type ProposalLogic struct {
	storage repository.Storage
}

// NewProposalLogic 创建提案业务逻辑
func NewProposalLogic(storage repository.Storage) *ProposalLogic {
	return &ProposalLogic{storage: storage}
}

// ProposalTally 提案计票结果
type ProposalTally struct {
	ProposalId    int64                `json:"proposalId"`
	Status        model.ProposalStatus `json:"status"`
	YesVotes      float64              `json:"yesVotes"`
	NoVotes       float64              `json:"noVotes"`
	TotalVotes    float64              `json:"totalVotes"`
	YesPercentage float64              `json:"yesPercentage"`
	Formatted     string               `json:"formatted"`
}

// GetProposals 获取提案列表
func (l *ProposalLogic) GetProposals(ctx context.Context) ([]model.Proposal, error) {
	proposals, err := l.storage.ListProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取提案列表失败: %w", err)
	}
	return proposals, nil
}

// GetProposal 获取提案详情
func (l *ProposalLogic) GetProposal(ctx context.Context, id int64) (*model.Proposal, error) {
	return l.storage.GetProposal(ctx, id)
}

// CreateProposal 创建提案
func (l *ProposalLogic) CreateProposal(ctx context.Context, in model.ProposalInput) (*model.Proposal, error) {
	return l.storage.CreateProposal(ctx, in)
}

// UpdateProposal 更新提案，状态可被外部直接设置，不校验流转
func (l *ProposalLogic) UpdateProposal(ctx context.Context, id int64, patch model.ProposalPatch) (*model.Proposal, error) {
	return l.storage.UpdateProposal(ctx, id, patch)
}

// DeleteProposal 删除提案
func (l *ProposalLogic) DeleteProposal(ctx context.Context, id int64) error {
	return l.storage.DeleteProposal(ctx, id)
}

// Vote 校验后累加票数
func (l *ProposalLogic) Vote(ctx context.Context, id int64, side model.VoteSide, amount float64) (*model.Proposal, error) {
	if !side.Valid() {
		return nil, ErrInvalidVote
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidVote
	}
	return l.storage.VoteOnProposal(ctx, id, side, amount)
}

// GetProposalTally 获取计票结果
func (l *ProposalLogic) GetProposalTally(ctx context.Context, id int64) (*ProposalTally, error) {
	p, err := l.storage.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	pct := YesPercentage(p)
	return &ProposalTally{
		ProposalId:    p.Id,
		Status:        p.Status,
		YesVotes:      p.YesVotes,
		NoVotes:       p.NoVotes,
		TotalVotes:    p.YesVotes + p.NoVotes,
		YesPercentage: pct,
		Formatted:     FormatPercentage(pct),
	}, nil
}

// YesPercentage 赞成票占比，无人投票时为 0
func YesPercentage(p *model.Proposal) float64 {
	total := p.YesVotes + p.NoVotes
	if total <= 0 {
		return 0
	}
	return p.YesVotes / total * 100
}

// ParseVoteAmount 票数可以是 JSON 数字或数字字符串
func ParseVoteAmount(v interface{}) (float64, error) {
	switch a := v.(type) {
	case float64:
		return a, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return 0, ErrInvalidVote
		}
		return f, nil
	default:
		return 0, ErrInvalidVote
	}
}
