package model

import (
	"time"
)

// NFTStatusActive 有效份额
const NFTStatusActive = "active"

// NFT 任务份额 NFT，MissionId 不做存在性校验
type NFT struct {
	Id                  int64     `json:"id" gorm:"primaryKey"`
	MissionId           int64     `json:"missionId" gorm:"not null;index"`
	ShareId             int64     `json:"shareId" gorm:"not null"`
	OwnerAddress        string    `json:"ownerAddress" gorm:"not null;index"`
	Status              string    `json:"status" gorm:"not null;default:'active'"`
	AcquisitionDate     time.Time `json:"acquisitionDate" gorm:"autoCreateTime"`
	OwnershipPercentage float64   `json:"ownershipPercentage" gorm:"type:numeric;not null"`
	RevenueShare        float64   `json:"revenueShare" gorm:"type:numeric;not null"`
}

// TableName 自定义表名
func (NFT) TableName() string {
	return "nfts"
}

// NFTInput 创建份额的请求体
type NFTInput struct {
	MissionId           int64   `json:"missionId" binding:"required,gt=0"`
	ShareId             int64   `json:"shareId" binding:"gte=0"`
	OwnerAddress        string  `json:"ownerAddress" binding:"required"`
	Status              string  `json:"status"`
	OwnershipPercentage float64 `json:"ownershipPercentage" binding:"gte=0,lte=100"`
	RevenueShare        float64 `json:"revenueShare" binding:"gte=0"`
}

// NewNFT 根据请求体构造份额
func NewNFT(in NFTInput) NFT {
	status := in.Status
	if status == "" {
		status = NFTStatusActive
	}
	return NFT{
		MissionId:           in.MissionId,
		ShareId:             in.ShareId,
		OwnerAddress:        in.OwnerAddress,
		Status:              status,
		OwnershipPercentage: in.OwnershipPercentage,
		RevenueShare:        in.RevenueShare,
	}
}

// NFTPatch 份额部分更新
type NFTPatch struct {
	MissionId           *int64   `json:"missionId" binding:"omitempty,gt=0"`
	ShareId             *int64   `json:"shareId" binding:"omitempty,gte=0"`
	OwnerAddress        *string  `json:"ownerAddress"`
	Status              *string  `json:"status"`
	OwnershipPercentage *float64 `json:"ownershipPercentage" binding:"omitempty,gte=0,lte=100"`
	RevenueShare        *float64 `json:"revenueShare" binding:"omitempty,gte=0"`
}

// Apply 将补丁浅合并到份额上
func (p NFTPatch) Apply(n *NFT) {
	if p.MissionId != nil {
		n.MissionId = *p.MissionId
	}
	if p.ShareId != nil {
		n.ShareId = *p.ShareId
	}
	if p.OwnerAddress != nil {
		n.OwnerAddress = *p.OwnerAddress
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.OwnershipPercentage != nil {
		n.OwnershipPercentage = *p.OwnershipPercentage
	}
	if p.RevenueShare != nil {
		n.RevenueShare = *p.RevenueShare
	}
}

// Updates 转换为数据库更新字段
func (p NFTPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.MissionId != nil {
		updates["mission_id"] = *p.MissionId
	}
	if p.ShareId != nil {
		updates["share_id"] = *p.ShareId
	}
	if p.OwnerAddress != nil {
		updates["owner_address"] = *p.OwnerAddress
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.OwnershipPercentage != nil {
		updates["ownership_percentage"] = *p.OwnershipPercentage
	}
	if p.RevenueShare != nil {
		updates["revenue_share"] = *p.RevenueShare
	}
	return updates
}
