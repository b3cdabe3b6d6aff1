package service

import "github.com/cubehq/dailycube-backend/internal/model"

// RanksAhead is the canonical "ranks strictly ahead" predicate. The
// leaderboard repository's SQL mirrors it exactly: higher metric
// first, ties broken by earlier updated_at, remaining ties by lower
// fid. For any two distinct users exactly one direction holds, so the
// induced order is total and the rank sequence has no ties.
func RanksAhead(a, b *model.User, metric model.RankMetric) bool {
	if cmp := compareMetric(a, b, metric); cmp != 0 {
		return cmp > 0
	}
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.Before(b.UpdatedAt)
	}
	return a.FID < b.FID
}

func compareMetric(a, b *model.User, metric model.RankMetric) int {
	if metric == model.MetricRewards {
		return a.Rewards.Cmp(b.Rewards)
	}
	switch {
	case a.Score > b.Score:
		return 1
	case a.Score < b.Score:
		return -1
	}
	return 0
}
