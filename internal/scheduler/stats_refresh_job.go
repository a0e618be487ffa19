package scheduler

import (
	"context"
	"time"

	"github.com/blues/spacedao/internal/config"
	"github.com/blues/spacedao/internal/logger"
	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/repository"
	"github.com/go-co-op/gocron/v2"
)

// StatsRefreshJob 按任务数据刷新首页统计
type StatsRefreshJob struct {
	statsLogic *logic.StatsLogic
	config     *config.Config
}

// NewStatsRefreshJob 创建统计刷新任务
func NewStatsRefreshJob(storage repository.Storage, cfg *config.Config) *StatsRefreshJob {
	return &StatsRefreshJob{
		statsLogic: logic.NewStatsLogic(storage),
		config:     cfg,
	}
}

// GetName 获取任务名称
func (j *StatsRefreshJob) GetName() string {
	return "stats_refresh"
}

// GetSchedule 获取调度配置
func (j *StatsRefreshJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval())
}

func (j *StatsRefreshJob) interval() time.Duration {
	return time.Duration(j.config.Task.StatsInterval) * time.Second
}

// Execute 执行任务
func (j *StatsRefreshJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), j.interval())
	defer cancel()

	stats, err := j.statsLogic.RefreshStats(ctx)
	if err != nil {
		logger.Error("Failed to refresh stats: %v", err)
		return
	}

	logger.Debug("Stats refreshed: totalValueLocked=%.2f activeMissions=%d",
		stats.TotalValueLocked, stats.ActiveMissions)
}
