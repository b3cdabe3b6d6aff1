package service

import (
	"context"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
)

type NotificationService interface {
	Register(ctx context.Context, fid uint64, token, url string) error
	Remove(ctx context.Context, fid uint64) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Register(ctx context.Context, fid uint64, token, url string) error {
	if token == "" || url == "" {
		return apperror.ErrInvalidInput
	}

	return s.repo.Upsert(ctx, &model.NotificationToken{
		UserFID: fid,
		Token:   token,
		URL:     url,
	})
}

func (s *notificationService) Remove(ctx context.Context, fid uint64) error {
	return s.repo.Delete(ctx, fid)
}
