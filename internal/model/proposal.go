package model

import (
	"time"
)

// ProposalStatus 提案状态
type ProposalStatus string

const (
	ProposalStatusVoting   ProposalStatus = "voting"   // 投票中
	ProposalStatusPending  ProposalStatus = "pending"  // 待开始
	ProposalStatusApproved ProposalStatus = "approved" // 已通过
	ProposalStatusRejected ProposalStatus = "rejected" // 已否决
	ProposalStatusExecuted ProposalStatus = "executed" // 已执行
)

// VoteSide 投票方向
type VoteSide string

const (
	VoteYes VoteSide = "yes"
	VoteNo  VoteSide = "no"
)

// Valid 是否为 yes 或 no
func (v VoteSide) Valid() bool {
	return v == VoteYes || v == VoteNo
}

// Proposal 治理提案模型
type Proposal struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Proposer    string         `json:"proposer" gorm:"not null"`
	Status      ProposalStatus `json:"status" gorm:"not null;default:'voting'"`

	// 投票统计，只能通过投票累加
	YesVotes float64 `json:"yesVotes" gorm:"type:numeric;not null;default:0"`
	NoVotes  float64 `json:"noVotes" gorm:"type:numeric;not null;default:0"`

	EndTime  time.Time `json:"endTime" gorm:"not null"`
	Executed bool      `json:"executed" gorm:"not null;default:false"`
}

// TableName 自定义表名
func (Proposal) TableName() string {
	return "proposals"
}

// ProposalInput 创建提案的请求体，票数和执行状态由服务端决定
type ProposalInput struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Proposer    string         `json:"proposer" binding:"required"`
	Status      ProposalStatus `json:"status" binding:"omitempty,oneof=voting pending approved rejected executed"`
	EndTime     time.Time      `json:"endTime" binding:"required"`
}

// NewProposal 根据请求体构造提案
func NewProposal(in ProposalInput) Proposal {
	status := in.Status
	if status == "" {
		status = ProposalStatusVoting
	}
	return Proposal{
		Title:       in.Title,
		Description: in.Description,
		Proposer:    in.Proposer,
		Status:      status,
		EndTime:     in.EndTime,
	}
}

// ProposalPatch 提案部分更新
type ProposalPatch struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Proposer    *string         `json:"proposer"`
	Status      *ProposalStatus `json:"status" binding:"omitempty,oneof=voting pending approved rejected executed"`
	EndTime     *time.Time      `json:"endTime"`
}

// Apply 将补丁浅合并到提案上
func (p ProposalPatch) Apply(prop *Proposal) {
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Proposer != nil {
		prop.Proposer = *p.Proposer
	}
	if p.Status != nil {
		prop.Status = *p.Status
	}
	if p.EndTime != nil {
		prop.EndTime = *p.EndTime
	}
}

// Updates 转换为数据库更新字段
func (p ProposalPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Proposer != nil {
		updates["proposer"] = *p.Proposer
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.EndTime != nil {
		updates["end_time"] = *p.EndTime
	}
	return updates
}
