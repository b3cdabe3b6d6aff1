package repository

import (
	"context"
	"time"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *model.User) error
	FindByFID(ctx context.Context, fid uint64) (*model.User, error)
	FindByAddress(ctx context.Context, address string) (*model.User, error)
	// ApplyClick performs the daily credit as a single conditional
	// update. Returns false when the guard did not match, i.e. the
	// user already clicked today (possibly concurrently).
	ApplyClick(ctx context.Context, fid uint64, today time.Time, streak int, power int64, now time.Time) (bool, error)
	// SetTier succeeds only when the 24h lock has expired.
	SetTier(ctx context.Context, fid uint64, version int, now, lockUntil time.Time) (bool, error)
	AddRewards(ctx context.Context, fid uint64, amount decimal.Decimal, now time.Time) error
	CountReferrals(ctx context.Context, fid uint64) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, user *model.User) error {
	assignments := map[string]interface{}{
		"username":     user.Username,
		"avatar_url":   user.AvatarURL,
		"neynar_score": user.NeynarScore,
	}
	// Address binding is additive: a sync without a wallet must not
	// unbind a previously connected one.
	if user.PrimaryAddress != nil {
		assignments["primary_address"] = user.PrimaryAddress
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fid"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(user).Error
}

func (r *userRepository) FindByFID(ctx context.Context, fid uint64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("fid = ?", fid).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByAddress(ctx context.Context, address string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(primary_address) = LOWER(?)", address).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ApplyClick(ctx context.Context, fid uint64, today time.Time, streak int, power int64, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("fid = ? AND (last_click_date IS NULL OR last_click_date <> ?)", fid, today).
		Updates(map[string]interface{}{
			"score":           gorm.Expr("score + ?", power),
			"streak":          streak,
			"last_click_date": today,
			"updated_at":      now,
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *userRepository) SetTier(ctx context.Context, fid uint64, version int, now, lockUntil time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("fid = ? AND tier_updatable_at <= ?", fid, now).
		Updates(map[string]interface{}{
			"version":           version,
			"tier_updatable_at": lockUntil,
			"updated_at":        now,
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *userRepository) AddRewards(ctx context.Context, fid uint64, amount decimal.Decimal, now time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("fid = ?", fid).
		Updates(map[string]interface{}{
			"rewards":        gorm.Expr("rewards + ?", amount),
			"actual_rewards": gorm.Expr("actual_rewards + ?", amount),
			"updated_at":     now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) CountReferrals(ctx context.Context, fid uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("referrer_id = ?", fid).
		Count(&count).Error
	return count, err
}
