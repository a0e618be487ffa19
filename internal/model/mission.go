package model

import (
	"time"
)

// MissionStatusActive 募资中的任务
const MissionStatusActive = "active"

// Mission 太空任务模型
type Mission struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
	Status      string `json:"status" gorm:"not null;default:'active'"`

	// 众筹信息
	TargetFunding  float64 `json:"targetFunding" gorm:"type:numeric;not null"`
	CurrentFunding float64 `json:"currentFunding" gorm:"type:numeric;not null;default:0"`

	// 时间信息，前端只展示年份
	StartDate string `json:"startDate" gorm:"not null"`
	EndDate   string `json:"endDate" gorm:"not null"`

	// 份额信息
	SharePrice      float64 `json:"sharePrice" gorm:"type:numeric;not null"`
	TotalShares     int64   `json:"totalShares" gorm:"not null"`
	AvailableShares int64   `json:"availableShares" gorm:"not null"`
	RevenueShare    float64 `json:"revenueShare" gorm:"type:numeric;not null"`
}

// TableName 自定义表名
func (Mission) TableName() string {
	return "missions"
}

// MissionInput 创建任务的请求体，不包含 id 和 createdAt
type MissionInput struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	ImageURL        string  `json:"imageUrl" binding:"required"`
	Status          string  `json:"status"`
	TargetFunding   float64 `json:"targetFunding" binding:"gt=0"`
	CurrentFunding  float64 `json:"currentFunding" binding:"gte=0"`
	StartDate       string  `json:"startDate" binding:"required"`
	EndDate         string  `json:"endDate" binding:"required"`
	SharePrice      float64 `json:"sharePrice" binding:"gte=0"`
	TotalShares     int64   `json:"totalShares" binding:"gte=0"`
	AvailableShares int64   `json:"availableShares" binding:"gte=0"`
	RevenueShare    float64 `json:"revenueShare" binding:"gte=0"`
}

// NewMission 根据请求体构造任务，填充默认值
func NewMission(in MissionInput) Mission {
	status := in.Status
	if status == "" {
		status = MissionStatusActive
	}
	return Mission{
		Title:           in.Title,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		Status:          status,
		TargetFunding:   in.TargetFunding,
		CurrentFunding:  in.CurrentFunding,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		SharePrice:      in.SharePrice,
		TotalShares:     in.TotalShares,
		AvailableShares: in.AvailableShares,
		RevenueShare:    in.RevenueShare,
	}
}

// MissionPatch 部分更新，nil 字段保持原值
type MissionPatch struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"imageUrl"`
	Status          *string  `json:"status"`
	TargetFunding   *float64 `json:"targetFunding" binding:"omitempty,gt=0"`
	CurrentFunding  *float64 `json:"currentFunding" binding:"omitempty,gte=0"`
	StartDate       *string  `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	SharePrice      *float64 `json:"sharePrice" binding:"omitempty,gte=0"`
	TotalShares     *int64   `json:"totalShares" binding:"omitempty,gte=0"`
	AvailableShares *int64   `json:"availableShares" binding:"omitempty,gte=0"`
	RevenueShare    *float64 `json:"revenueShare" binding:"omitempty,gte=0"`
}

// Apply 将补丁浅合并到任务上
func (p MissionPatch) Apply(m *Mission) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.TargetFunding != nil {
		m.TargetFunding = *p.TargetFunding
	}
	if p.CurrentFunding != nil {
		m.CurrentFunding = *p.CurrentFunding
	}
	if p.StartDate != nil {
		m.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		m.EndDate = *p.EndDate
	}
	if p.SharePrice != nil {
		m.SharePrice = *p.SharePrice
	}
	if p.TotalShares != nil {
		m.TotalShares = *p.TotalShares
	}
	if p.AvailableShares != nil {
		m.AvailableShares = *p.AvailableShares
	}
	if p.RevenueShare != nil {
		m.RevenueShare = *p.RevenueShare
	}
}

// Updates 转换为数据库更新字段
func (p MissionPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.TargetFunding != nil {
		updates["target_funding"] = *p.TargetFunding
	}
	if p.CurrentFunding != nil {
		updates["current_funding"] = *p.CurrentFunding
	}
	if p.StartDate != nil {
		updates["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		updates["end_date"] = *p.EndDate
	}
	if p.SharePrice != nil {
		updates["share_price"] = *p.SharePrice
	}
	if p.TotalShares != nil {
		updates["total_shares"] = *p.TotalShares
	}
	if p.AvailableShares != nil {
		updates["available_shares"] = *p.AvailableShares
	}
	if p.RevenueShare != nil {
		updates["revenue_share"] = *p.RevenueShare
	}
	return updates
}
