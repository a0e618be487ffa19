package logic

import (
	"context"
	"fmt"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

// StatsLogic 首页统计业务逻辑
type StatsLogic struct {
	storage repository.Storage
}

// NewStatsLogic 创建统计业务逻辑
func NewStatsLogic(storage repository.Storage) *StatsLogic {
	return &StatsLogic{storage: storage}
}

// GetStats 获取统计
func (l *StatsLogic) GetStats(ctx context.Context) (*model.Stats, error) {
	return l.storage.GetStats(ctx)
}

// UpdateStats 合并更新统计
func (l *StatsLogic) UpdateStats(ctx context.Context, patch model.StatsPatch) (*model.Stats, error) {
	return l.storage.UpdateStats(ctx, patch)
}

// RefreshStats 根据任务数据重新计算锁仓总额和进行中任务数，
// daoMembers 和 nextLaunch 保持不变
func (l *StatsLogic) RefreshStats(ctx context.Context) (*model.Stats, error) {
	missions, err := l.storage.ListMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取任务列表失败: %w", err)
	}

	var (
		totalValueLocked float64
		activeMissions   int64
	)
	for _, m := range missions {
		totalValueLocked += m.CurrentFunding
		if m.Status == model.MissionStatusActive {
			activeMissions++
		}
	}

	stats, err := l.storage.UpdateStats(ctx, model.StatsPatch{
		TotalValueLocked: &totalValueLocked,
		ActiveMissions:   &activeMissions,
	})
	if err != nil {
		return nil, fmt.Errorf("更新统计失败: %w", err)
	}
	return stats, nil
}
