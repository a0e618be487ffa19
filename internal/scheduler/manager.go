package scheduler

import (
	"github.com/blues/spacedao/internal/config"
	"github.com/blues/spacedao/internal/logger"
	"github.com/blues/spacedao/internal/repository"
	"github.com/go-co-op/gocron/v2"
)

// Job 定时任务
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	storage   repository.Storage
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(storage repository.Storage, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		storage:   storage,
		config:    cfg,
	}
}

// Start 注册所有任务并启动调度器
func (m *Manager) Start() {
	m.RegisterJobs()
	m.scheduler.Start()
	logger.Info("Task manager started with %d jobs", len(m.scheduler.Jobs()))
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 间隔为 0 时不刷新统计
	if m.config.Task.StatsInterval > 0 {
		m.register(NewStatsRefreshJob(m.storage, m.config))
	}
}

func (m *Manager) register(job Job) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// JobNames 已注册的任务名称
func (m *Manager) JobNames() []string {
	var names []string
	for _, j := range m.scheduler.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
