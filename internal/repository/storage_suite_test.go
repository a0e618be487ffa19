package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blues/spacedao/internal/model"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildMission(title string) model.MissionInput {
	return model.MissionInput{
		Title:           title,
		Description:     "test mission",
		ImageURL:        "https://example.com/mission.png",
		TargetFunding:   5000000,
		CurrentFunding:  3600000,
		StartDate:       "2024",
		EndDate:         "2026",
		SharePrice:      0.05,
		TotalShares:     10000,
		AvailableShares: 2800,
		RevenueShare:    4.2,
	}
}

func buildProposal(title string) model.ProposalInput {
	return model.ProposalInput{
		Title:       title,
		Description: "test proposal",
		Proposer:    "0x71C...8Fe3",
		EndTime:     time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second),
	}
}

func buildNFT(missionId int64, owner string) model.NFTInput {
	return model.NFTInput{
		MissionId:           missionId,
		ShareId:             7,
		OwnerAddress:        owner,
		OwnershipPercentage: 0.5,
		RevenueShare:        4.2,
	}
}

func ptr[T any](v T) *T {
	return &v
}

// runStorageSuite 针对任意 Storage 实现运行同一组用例
func runStorageSuite(t *testing.T, newStorage func(t *testing.T) Storage) {
	ctx := context.Background()

	t.Run("create then get returns the created row", func(t *testing.T) {
		s := newStorage(t)

		created, err := s.CreateMission(ctx, buildMission("Mars Sample Return"))
		require.NoError(t, err)
		assert.NotZero(t, created.Id)
		assert.Equal(t, model.MissionStatusActive, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := s.GetMission(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, created.Id, got.Id)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, created.TargetFunding, got.TargetFunding)
		assert.Equal(t, created.AvailableShares, got.AvailableShares)
		assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	t.Run("ids increase and are never reused", func(t *testing.T) {
		s := newStorage(t)

		first, err := s.CreateMission(ctx, buildMission("first"))
		require.NoError(t, err)
		require.NoError(t, s.DeleteMission(ctx, first.Id))

		second, err := s.CreateMission(ctx, buildMission("second"))
		require.NoError(t, err)
		assert.Greater(t, second.Id, first.Id)

		p1, err := s.CreateProposal(ctx, buildProposal("p1"))
		require.NoError(t, err)
		p2, err := s.CreateProposal(ctx, buildProposal("p2"))
		require.NoError(t, err)
		assert.Greater(t, p2.Id, p1.Id)
	})

	t.Run("update is a shallow merge", func(t *testing.T) {
		s := newStorage(t)

		created, err := s.CreateMission(ctx, buildMission("Lunar Gateway"))
		require.NoError(t, err)

		updated, err := s.UpdateMission(ctx, created.Id, model.MissionPatch{CurrentFunding: ptr(4000000.0)})
		require.NoError(t, err)
		assert.Equal(t, 4000000.0, updated.CurrentFunding)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.TargetFunding, updated.TargetFunding)
		assert.Equal(t, created.Status, updated.Status)
		assert.Equal(t, created.TotalShares, updated.TotalShares)

		got, err := s.GetMission(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, 4000000.0, got.CurrentFunding)
	})

	t.Run("absent ids report not found", func(t *testing.T) {
		s := newStorage(t)

		_, err := s.GetMission(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.UpdateMission(ctx, 999, model.MissionPatch{Title: ptr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteMission(ctx, 999), ErrNotFound)

		_, err = s.GetProposal(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.VoteOnProposal(ctx, 999, model.VoteYes, 10)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteProposal(ctx, 999), ErrNotFound)

		_, err = s.GetNFT(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.UpdateNFT(ctx, 999, model.NFTPatch{Status: ptr("burned")})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteNFT(ctx, 999), ErrNotFound)

		_, err = s.GetUser(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("votes accumulate per side", func(t *testing.T) {
		s := newStorage(t)

		p, err := s.CreateProposal(ctx, buildProposal("Jupiter Flyby"))
		require.NoError(t, err)
		assert.Equal(t, model.ProposalStatusVoting, p.Status)
		assert.Zero(t, p.YesVotes)
		assert.Zero(t, p.NoVotes)
		assert.False(t, p.Executed)

		_, err = s.VoteOnProposal(ctx, p.Id, model.VoteYes, 100)
		require.NoError(t, err)
		p, err = s.VoteOnProposal(ctx, p.Id, model.VoteNo, 50)
		require.NoError(t, err)
		assert.Equal(t, 100.0, p.YesVotes)
		assert.Equal(t, 50.0, p.NoVotes)

		p, err = s.VoteOnProposal(ctx, p.Id, model.VoteYes, 100)
		require.NoError(t, err)
		assert.Equal(t, 200.0, p.YesVotes)
		assert.Equal(t, 50.0, p.NoVotes)
	})

	t.Run("proposal status is externally settable", func(t *testing.T) {
		s := newStorage(t)

		p, err := s.CreateProposal(ctx, buildProposal("R&D budget"))
		require.NoError(t, err)

		status := model.ProposalStatusExecuted
		p, err = s.UpdateProposal(ctx, p.Id, model.ProposalPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.ProposalStatusExecuted, p.Status)
		assert.Equal(t, "R&D budget", p.Title)
	})

	t.Run("nft owner filter keeps insertion order", func(t *testing.T) {
		s := newStorage(t)

		a1, err := s.CreateNFT(ctx, buildNFT(1, "0xABC"))
		require.NoError(t, err)
		_, err = s.CreateNFT(ctx, buildNFT(1, "0xDEF"))
		require.NoError(t, err)
		a2, err := s.CreateNFT(ctx, buildNFT(2, "0xABC"))
		require.NoError(t, err)

		all, err := s.ListNFTs(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)

		owned, err := s.ListNFTs(ctx, "0xABC")
		require.NoError(t, err)
		require.Len(t, owned, 2)
		assert.Equal(t, a1.Id, owned[0].Id)
		assert.Equal(t, a2.Id, owned[1].Id)
		assert.Equal(t, model.NFTStatusActive, owned[0].Status)
		assert.False(t, owned[0].AcquisitionDate.IsZero())

		none, err := s.ListNFTs(ctx, "0x000")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("list returns insertion order", func(t *testing.T) {
		s := newStorage(t)

		for _, title := range []string{"a", "b", "c"} {
			_, err := s.CreateMission(ctx, buildMission(title))
			require.NoError(t, err)
		}
		missions, err := s.ListMissions(ctx)
		require.NoError(t, err)
		require.Len(t, missions, 3)
		assert.Equal(t, "a", missions[0].Title)
		assert.Equal(t, "c", missions[2].Title)
	})

	t.Run("users by username and wallet", func(t *testing.T) {
		s := newStorage(t)

		wallet := "0x1234567890123456789012345678901234567890"
		u, err := s.CreateUser(ctx, model.User{Id: 77, Username: "ada", Password: "hash", WalletAddress: &wallet})
		require.NoError(t, err)
		assert.NotEqual(t, int64(77), u.Id)

		byName, err := s.GetUserByUsername(ctx, "ada")
		require.NoError(t, err)
		assert.Equal(t, u.Id, byName.Id)

		byWallet, err := s.GetUserByWalletAddress(ctx, wallet)
		require.NoError(t, err)
		assert.Equal(t, u.Id, byWallet.Id)

		_, err = s.GetUserByUsername(ctx, "grace")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stats singleton merges updates", func(t *testing.T) {
		s := newStorage(t)

		stats, err := s.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.StatsId, stats.Id)

		stats, err = s.UpdateStats(ctx, model.StatsPatch{DaoMembers: ptr(int64(3420))})
		require.NoError(t, err)
		stats, err = s.UpdateStats(ctx, model.StatsPatch{ActiveMissions: ptr(int64(8))})
		require.NoError(t, err)
		assert.Equal(t, int64(3420), stats.DaoMembers)
		assert.Equal(t, int64(8), stats.ActiveMissions)
		assert.Equal(t, model.StatsId, stats.Id)
	})
}
