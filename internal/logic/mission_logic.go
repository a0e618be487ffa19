package logic

import (
	"context"
	"fmt"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

// MissionLogic 任务业务逻辑
type MissionLogic struct {
	storage repository.Storage
}

// NewMissionLogic 创建任务业务逻辑
func NewMissionLogic(storage repository.Storage) *MissionLogic {
	return &MissionLogic{storage: storage}
}

// MissionProgress 任务募资进度
type MissionProgress struct {
	MissionId         int64   `json:"missionId"`
	CurrentFunding    float64 `json:"currentFunding"`
	TargetFunding     float64 `json:"targetFunding"`
	FundingPercentage float64 `json:"fundingPercentage"`
	Formatted         string  `json:"formatted"`
	SharesSold        int64   `json:"sharesSold"`
}

// GetMissions 获取任务列表
func (l *MissionLogic) GetMissions(ctx context.Context) ([]model.Mission, error) {
	missions, err := l.storage.ListMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取任务列表失败: %w", err)
	}
	return missions, nil
}

// GetMission 获取任务详情
func (l *MissionLogic) GetMission(ctx context.Context, id int64) (*model.Mission, error) {
	return l.storage.GetMission(ctx, id)
}

// CreateMission 创建任务
func (l *MissionLogic) CreateMission(ctx context.Context, in model.MissionInput) (*model.Mission, error) {
	return l.storage.CreateMission(ctx, in)
}

// UpdateMission 更新任务
func (l *MissionLogic) UpdateMission(ctx context.Context, id int64, patch model.MissionPatch) (*model.Mission, error) {
	return l.storage.UpdateMission(ctx, id, patch)
}

// DeleteMission 删除任务
func (l *MissionLogic) DeleteMission(ctx context.Context, id int64) error {
	return l.storage.DeleteMission(ctx, id)
}

// GetMissionProgress 获取任务募资进度
func (l *MissionLogic) GetMissionProgress(ctx context.Context, id int64) (*MissionProgress, error) {
	m, err := l.storage.GetMission(ctx, id)
	if err != nil {
		return nil, err
	}

	pct := FundingPercentage(m)
	return &MissionProgress{
		MissionId:         m.Id,
		CurrentFunding:    m.CurrentFunding,
		TargetFunding:     m.TargetFunding,
		FundingPercentage: pct,
		Formatted:         FormatPercentage(pct),
		SharesSold:        m.TotalShares - m.AvailableShares,
	}, nil
}

// FundingPercentage 计算完成百分比，目标为 0 时返回 0
func FundingPercentage(m *model.Mission) float64 {
	if m.TargetFunding <= 0 {
		return 0
	}
	return m.CurrentFunding / m.TargetFunding * 100
}

// FormatPercentage 保留一位小数，例如 72.0%
func FormatPercentage(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
