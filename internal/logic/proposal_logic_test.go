package logic

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

func createProposal(t *testing.T, l *ProposalLogic) *model.Proposal {
	t.Helper()
	p, err := l.CreateProposal(context.Background(), model.ProposalInput{
		Title:       "Jupiter Flyby Mission Funding",
		Description: "Allocate 2,000 ETH",
		Proposer:    "0x71C...8Fe3",
		EndTime:     time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	return p
}

func TestVote(t *testing.T) {
	ctx := context.Background()
	l := NewProposalLogic(repository.NewMemStorage())
	p := createProposal(t, l)

	_, err := l.Vote(ctx, p.Id, model.VoteYes, 100)
	require.NoError(t, err)
	updated, err := l.Vote(ctx, p.Id, model.VoteNo, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.YesVotes)
	assert.Equal(t, 50.0, updated.NoVotes)

	tally, err := l.GetProposalTally(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, tally.TotalVotes)
	assert.Equal(t, "66.7%", tally.Formatted)
}

func TestVoteRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	l := NewProposalLogic(repository.NewMemStorage())
	p := createProposal(t, l)

	tests := []struct {
		name   string
		side   model.VoteSide
		amount float64
	}{
		{"unknown side", "abstain", 10},
		{"empty side", "", 10},
		{"zero amount", model.VoteYes, 0},
		{"negative amount", model.VoteNo, -5},
		{"nan amount", model.VoteYes, math.NaN()},
		{"infinite amount", model.VoteYes, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Vote(ctx, p.Id, tt.side, tt.amount)
			assert.ErrorIs(t, err, ErrInvalidVote)
		})
	}

	got, err := l.GetProposal(ctx, p.Id)
	require.NoError(t, err)
	assert.Zero(t, got.YesVotes)
	assert.Zero(t, got.NoVotes)
}

func TestVoteMissingProposal(t *testing.T) {
	l := NewProposalLogic(repository.NewMemStorage())
	_, err := l.Vote(context.Background(), 42, model.VoteYes, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestParseVoteAmount(t *testing.T) {
	v, err := ParseVoteAmount(100.0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	v, err = ParseVoteAmount(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = ParseVoteAmount("lots")
	assert.ErrorIs(t, err, ErrInvalidVote)

	_, err = ParseVoteAmount(nil)
	assert.ErrorIs(t, err, ErrInvalidVote)

	_, err = ParseVoteAmount(true)
	assert.ErrorIs(t, err, ErrInvalidVote)
}

func TestYesPercentageWithoutVotes(t *testing.T) {
	assert.Zero(t, YesPercentage(&model.Proposal{}))
}
