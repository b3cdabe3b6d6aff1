package service

import (
	"context"
	"errors"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"gorm.io/gorm"
)

// SyncUserInput carries the profile fields refreshed on every app
// sync. ReferrerID is only honored on first creation.
type SyncUserInput struct {
	FID            uint64
	Username       string
	AvatarURL      *string
	NeynarScore    float64
	PrimaryAddress *string
	ReferrerID     *uint64
}

type UserService interface {
	Sync(ctx context.Context, input SyncUserInput) (*model.User, int64, error)
	Get(ctx context.Context, fid uint64) (*model.User, int64, error)
}

type userService struct {
	users       repository.UserRepository
	leaderboard repository.LeaderboardRepository
	clock       Clock
}

func NewUserService(users repository.UserRepository, leaderboard repository.LeaderboardRepository, clock Clock) UserService {
	return &userService{
		users:       users,
		leaderboard: leaderboard,
		clock:       clock,
	}
}

func (s *userService) Sync(ctx context.Context, input SyncUserInput) (*model.User, int64, error) {
	now := s.clock.Now()

	user := &model.User{
		FID:            input.FID,
		Username:       input.Username,
		AvatarURL:      input.AvatarURL,
		NeynarScore:    input.NeynarScore,
		PrimaryAddress: input.PrimaryAddress,
		ReferrerID:     input.ReferrerID,
		Version:        1,
		// A fresh user may pick a tier right away.
		TierUpdatableAt: now,
		UpdatedAt:       now,
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, 0, err
	}

	return s.Get(ctx, input.FID)
}

func (s *userService) Get(ctx context.Context, fid uint64) (*model.User, int64, error) {
	user, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperror.ErrNotFound
		}
		return nil, 0, err
	}

	rank, err := s.leaderboard.RankOf(ctx, user, model.MetricScore)
	if err != nil {
		return nil, 0, err
	}

	return user, rank, nil
}
