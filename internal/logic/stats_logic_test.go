package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

func TestRefreshStats(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemStorage()
	require.NoError(t, repository.Seed(ctx, storage))

	missions := NewMissionLogic(storage)
	done := "completed"
	_, err := missions.UpdateMission(ctx, 3, model.MissionPatch{Status: &done})
	require.NoError(t, err)

	l := NewStatsLogic(storage)
	stats, err := l.RefreshStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3600000.0+12000000.0+8900000.0, stats.TotalValueLocked)
	assert.Equal(t, int64(2), stats.ActiveMissions)
	assert.Equal(t, int64(3420), stats.DaoMembers)
	assert.NotNil(t, stats.NextLaunch)
}

func TestRefreshStatsEmpty(t *testing.T) {
	l := NewStatsLogic(repository.NewMemStorage())
	stats, err := l.RefreshStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalValueLocked)
	assert.Zero(t, stats.ActiveMissions)
}
