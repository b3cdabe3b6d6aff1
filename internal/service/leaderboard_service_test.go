package service

import (
	"context"
	"testing"
	"time"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLeaderboardUsers(repo *fakeUserRepo) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	scores := []int64{900, 700, 500, 300, 100}
	for i, score := range scores {
		repo.add(model.User{
			FID:       uint64(i + 1),
			Score:     score,
			Rewards:   decimal.NewFromInt(score).Div(decimal.NewFromInt(1000)),
			UpdatedAt: base,
		})
	}
}

func newLeaderboardFixture(t *testing.T) (*fakeUserRepo, LeaderboardService) {
	t.Helper()

	userRepo := newFakeUserRepo()
	return userRepo, NewLeaderboardService(newFakeLeaderboardRepo(userRepo), userRepo)
}

func TestGetLeaderboard_OrderingAndPagination(t *testing.T) {
	ctx := context.Background()
	userRepo, svc := newLeaderboardFixture(t)
	seedLeaderboardUsers(userRepo)

	page, err := svc.GetLeaderboard(ctx, model.MetricScore, 2, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, uint64(1), page.Entries[0].User.FID)
	assert.Equal(t, int64(1), page.Entries[0].Rank)
	assert.Equal(t, uint64(2), page.Entries[1].User.FID)
	assert.Equal(t, int64(2), page.Entries[1].Rank)

	// Second page continues the rank sequence.
	page, err = svc.GetLeaderboard(ctx, model.MetricScore, 2, 2, nil)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, uint64(3), page.Entries[0].User.FID)
	assert.Equal(t, int64(3), page.Entries[0].Rank)

	// Offset past the end yields an empty page, not an error.
	page, err = svc.GetLeaderboard(ctx, model.MetricScore, 2, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Equal(t, int64(5), page.Total)
}

func TestGetLeaderboard_RewardsMetric(t *testing.T) {
	ctx := context.Background()
	userRepo, svc := newLeaderboardFixture(t)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	userRepo.add(model.User{FID: 1, Score: 10, Rewards: decimal.RequireFromString("0.001"), UpdatedAt: base})
	userRepo.add(model.User{FID: 2, Score: 9000, Rewards: decimal.RequireFromString("0.0005"), UpdatedAt: base})

	page, err := svc.GetLeaderboard(ctx, model.MetricRewards, 10, 0, nil)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, uint64(1), page.Entries[0].User.FID, "rewards metric ignores score")
}

func TestGetLeaderboard_ViewerPinnedOffPage(t *testing.T) {
	ctx := context.Background()
	userRepo, svc := newLeaderboardFixture(t)
	seedLeaderboardUsers(userRepo)

	viewer := uint64(5)
	page, err := svc.GetLeaderboard(ctx, model.MetricScore, 2, 0, &viewer)
	require.NoError(t, err)
	require.NotNil(t, page.Viewer)
	assert.Equal(t, uint64(5), page.Viewer.User.FID)
	assert.Equal(t, int64(5), page.Viewer.Rank)
}

func TestGetLeaderboard_ViewerAlreadyOnPage(t *testing.T) {
	ctx := context.Background()
	userRepo, svc := newLeaderboardFixture(t)
	seedLeaderboardUsers(userRepo)

	viewer := uint64(1)
	page, err := svc.GetLeaderboard(ctx, model.MetricScore, 2, 0, &viewer)
	require.NoError(t, err)
	assert.Nil(t, page.Viewer, "no duplicate entry for a viewer already listed")
}

func TestGetLeaderboard_UnknownViewer(t *testing.T) {
	ctx := context.Background()
	userRepo, svc := newLeaderboardFixture(t)
	seedLeaderboardUsers(userRepo)

	viewer := uint64(404)
	page, err := svc.GetLeaderboard(ctx, model.MetricScore, 2, 0, &viewer)
	require.NoError(t, err, "missing viewer never fails the page")
	assert.Nil(t, page.Viewer)
	assert.Len(t, page.Entries, 2)
}
