package repository

import (
	"context"

	"github.com/cubehq/dailycube-backend/internal/model"
	"gorm.io/gorm"
)

// LeaderboardRepository derives rank at read time. Rank is never
// stored; the count predicate here and the List ordering must describe
// the same total order (metric desc, updated_at asc, fid asc).
type LeaderboardRepository interface {
	RankOf(ctx context.Context, user *model.User, metric model.RankMetric) (int64, error)
	List(ctx context.Context, metric model.RankMetric, limit, offset int) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) RankOf(ctx context.Context, user *model.User, metric model.RankMetric) (int64, error) {
	column := metricColumn(metric)
	var primary interface{}
	if metric == model.MetricRewards {
		primary = user.Rewards
	} else {
		primary = user.Score
	}

	var ahead int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where(column+" > ? OR ("+column+" = ? AND updated_at < ?) OR ("+column+" = ? AND updated_at = ? AND fid < ?)",
			primary, primary, user.UpdatedAt, primary, user.UpdatedAt, user.FID).
		Count(&ahead).Error
	if err != nil {
		return 0, err
	}

	return ahead + 1, nil
}

func (r *leaderboardRepository) List(ctx context.Context, metric model.RankMetric, limit, offset int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order(metricColumn(metric) + " DESC, updated_at ASC, fid ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *leaderboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func metricColumn(metric model.RankMetric) string {
	if metric == model.MetricRewards {
		return "rewards"
	}
	return "score"
}
