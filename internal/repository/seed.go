package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/blues/spacedao/internal/model"
)

// Seed 写入示例任务、提案和首页统计
func Seed(ctx context.Context, s Storage) error {
	now := time.Now()
	day := 24 * time.Hour

	nextLaunch := now.Add(3 * day)
	tvl := float64(2400000)
	activeMissions := int64(8)
	daoMembers := int64(3420)
	if _, err := s.UpdateStats(ctx, model.StatsPatch{
		TotalValueLocked: &tvl,
		ActiveMissions:   &activeMissions,
		DaoMembers:       &daoMembers,
		NextLaunch:       &nextLaunch,
	}); err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	missions := []model.MissionInput{
		{
			Title:           "Mars Sample Return",
			Description:     "A mission to collect and return samples from the Martian surface for scientific study.",
			ImageURL:        "https://images.unsplash.com/photo-1451187580459-43490279c0fa",
			Status:          model.MissionStatusActive,
			TargetFunding:   5000000,
			CurrentFunding:  3600000,
			StartDate:       "2024",
			EndDate:         "2026",
			SharePrice:      0.05,
			TotalShares:     10000,
			AvailableShares: 2800,
			RevenueShare:    4.2,
		},
		{
			Title:           "Lunar Gateway Station",
			Description:     "Construction of modular station orbiting the Moon as a staging point for deep space exploration.",
			ImageURL:        "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa",
			Status:          model.MissionStatusActive,
			TargetFunding:   25000000,
			CurrentFunding:  12000000,
			StartDate:       "2023",
			EndDate:         "2028",
			SharePrice:      0.25,
			TotalShares:     100000,
			AvailableShares: 52000,
			RevenueShare:    6.5,
		},
		{
			Title:           "Asteroid Mining Initiative",
			Description:     "Pioneering mission to extract valuable resources from near-Earth asteroids using robotic technology.",
			ImageURL:        "https://images.unsplash.com/photo-1516339901601-2e1b62dc0c45",
			Status:          model.MissionStatusActive,
			TargetFunding:   10000000,
			CurrentFunding:  8900000,
			StartDate:       "2024",
			EndDate:         "2027",
			SharePrice:      0.1,
			TotalShares:     10000,
			AvailableShares: 1100,
			RevenueShare:    12.5,
		},
	}
	for _, in := range missions {
		if _, err := s.CreateMission(ctx, in); err != nil {
			return fmt.Errorf("seed mission %q: %w", in.Title, err)
		}
	}

	proposals := []struct {
		input    model.ProposalInput
		yesVotes float64
		noVotes  float64
	}{
		{
			input: model.ProposalInput{
				Title:       "Jupiter Flyby Mission Funding",
				Description: "Allocate 2,000 ETH from treasury for development of Jupiter flyby spacecraft with advanced sensors.",
				Proposer:    "0x71C...8Fe3",
				Status:      model.ProposalStatusVoting,
				EndTime:     now.Add(3 * day),
			},
			yesVotes: 129500,
			noVotes:  26200,
		},
		{
			input: model.ProposalInput{
				Title:       "Increase Treasury Allocation for R&D",
				Description: "Increase research & development budget from 12% to 20% of treasury funds for next fiscal year.",
				Proposer:    "0x4B2...9Aa1",
				Status:      model.ProposalStatusVoting,
				EndTime:     now.Add(5 * day),
			},
			yesVotes: 84200,
			noVotes:  100100,
		},
	}
	for _, p := range proposals {
		created, err := s.CreateProposal(ctx, p.input)
		if err != nil {
			return fmt.Errorf("seed proposal %q: %w", p.input.Title, err)
		}
		// 预置票数通过投票累加写入
		if _, err := s.VoteOnProposal(ctx, created.Id, model.VoteYes, p.yesVotes); err != nil {
			return fmt.Errorf("seed proposal votes: %w", err)
		}
		if _, err := s.VoteOnProposal(ctx, created.Id, model.VoteNo, p.noVotes); err != nil {
			return fmt.Errorf("seed proposal votes: %w", err)
		}
	}

	return nil
}
