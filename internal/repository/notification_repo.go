package repository

import (
	"context"

	"github.com/cubehq/dailycube-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository interface {
	Upsert(ctx context.Context, token *model.NotificationToken) error
	Delete(ctx context.Context, fid uint64) error
	FindByFID(ctx context.Context, fid uint64) (*model.NotificationToken, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Upsert(ctx context.Context, token *model.NotificationToken) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_fid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"token": token.Token,
			"url":   token.URL,
		}),
	}).Create(token).Error
}

func (r *notificationRepository) Delete(ctx context.Context, fid uint64) error {
	return r.db.WithContext(ctx).Delete(&model.NotificationToken{}, "user_fid = ?", fid).Error
}

func (r *notificationRepository) FindByFID(ctx context.Context, fid uint64) (*model.NotificationToken, error) {
	var token model.NotificationToken
	if err := r.db.WithContext(ctx).
		Where("user_fid = ?", fid).
		First(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}
