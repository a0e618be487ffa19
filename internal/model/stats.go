package model

import (
	"time"
)

// StatsId 统计数据只有一行
const StatsId int64 = 1

// Stats 首页统计
type Stats struct {
	Id               int64      `json:"id" gorm:"primaryKey"`
	TotalValueLocked float64    `json:"totalValueLocked" gorm:"type:numeric;not null;default:0"`
	ActiveMissions   int64      `json:"activeMissions" gorm:"not null;default:0"`
	DaoMembers       int64      `json:"daoMembers" gorm:"not null;default:0"`
	NextLaunch       *time.Time `json:"nextLaunch"`
}

// TableName 自定义表名
func (Stats) TableName() string {
	return "stats"
}

// StatsPatch 统计部分更新
type StatsPatch struct {
	TotalValueLocked *float64   `json:"totalValueLocked" binding:"omitempty,gte=0"`
	ActiveMissions   *int64     `json:"activeMissions" binding:"omitempty,gte=0"`
	DaoMembers       *int64     `json:"daoMembers" binding:"omitempty,gte=0"`
	NextLaunch       *time.Time `json:"nextLaunch"`
}

// Apply 将补丁浅合并到统计上
func (p StatsPatch) Apply(s *Stats) {
	if p.TotalValueLocked != nil {
		s.TotalValueLocked = *p.TotalValueLocked
	}
	if p.ActiveMissions != nil {
		s.ActiveMissions = *p.ActiveMissions
	}
	if p.DaoMembers != nil {
		s.DaoMembers = *p.DaoMembers
	}
	if p.NextLaunch != nil {
		t := *p.NextLaunch
		s.NextLaunch = &t
	}
}

// Updates 转换为数据库更新字段
func (p StatsPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.TotalValueLocked != nil {
		updates["total_value_locked"] = *p.TotalValueLocked
	}
	if p.ActiveMissions != nil {
		updates["active_missions"] = *p.ActiveMissions
	}
	if p.DaoMembers != nil {
		updates["dao_members"] = *p.DaoMembers
	}
	if p.NextLaunch != nil {
		updates["next_launch"] = *p.NextLaunch
	}
	return updates
}
