package repository

import (
	"context"

	"github.com/cubehq/dailycube-backend/internal/model"
	"gorm.io/gorm"
)

type TierRepository interface {
	GetByVersion(ctx context.Context, version int) (*model.TierConfig, error)
	ListAll(ctx context.Context) ([]model.TierConfig, error)
}

type tierRepository struct {
	db *gorm.DB
}

func NewTierRepository(db *gorm.DB) TierRepository {
	return &tierRepository{db: db}
}

func (r *tierRepository) GetByVersion(ctx context.Context, version int) (*model.TierConfig, error) {
	var cfg model.TierConfig
	if err := r.db.WithContext(ctx).
		Where("version = ?", version).
		First(&cfg).Error; err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r *tierRepository) ListAll(ctx context.Context) ([]model.TierConfig, error) {
	var configs []model.TierConfig
	err := r.db.WithContext(ctx).Order("version asc").Find(&configs).Error
	return configs, err
}
