package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

func buildMission(target, current float64) model.MissionInput {
	return model.MissionInput{
		Title:           "Mars Sample Return",
		Description:     "sample return",
		ImageURL:        "https://example.com/mars.png",
		TargetFunding:   target,
		CurrentFunding:  current,
		StartDate:       "2024",
		EndDate:         "2026",
		SharePrice:      0.05,
		TotalShares:     10000,
		AvailableShares: 2800,
		RevenueShare:    4.2,
	}
}

func TestMissionProgress(t *testing.T) {
	ctx := context.Background()
	l := NewMissionLogic(repository.NewMemStorage())

	m, err := l.CreateMission(ctx, buildMission(5000000, 3600000))
	require.NoError(t, err)

	progress, err := l.GetMissionProgress(ctx, m.Id)
	require.NoError(t, err)
	assert.InDelta(t, 72.0, progress.FundingPercentage, 1e-9)
	assert.Equal(t, "72.0%", progress.Formatted)
	assert.Equal(t, int64(7200), progress.SharesSold)

	_, err = l.GetMissionProgress(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFundingPercentage(t *testing.T) {
	tests := []struct {
		name     string
		mission  model.Mission
		expected string
	}{
		{"partial", model.Mission{TargetFunding: 25000000, CurrentFunding: 12000000}, "48.0%"},
		{"funded", model.Mission{TargetFunding: 10, CurrentFunding: 10}, "100.0%"},
		{"overfunded", model.Mission{TargetFunding: 10, CurrentFunding: 15}, "150.0%"},
		{"zero target", model.Mission{TargetFunding: 0, CurrentFunding: 15}, "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercentage(FundingPercentage(&tt.mission)))
		})
	}
}
