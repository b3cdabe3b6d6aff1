package service

import (
	"context"
	"errors"
	"time"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"gorm.io/gorm"
)

type TierChangeResult struct {
	User   *model.User
	Rank   int64
	Config *model.TierConfig
}

type TierService interface {
	// SetTier switches the user's reward-contract configuration. A
	// change is allowed at most once per lock window.
	SetTier(ctx context.Context, fid uint64, newTier int) (*TierChangeResult, error)
	// ListTiers returns every selectable tier configuration.
	ListTiers(ctx context.Context) ([]model.TierConfig, error)
}

type tierService struct {
	users       repository.UserRepository
	tiers       repository.TierRepository
	leaderboard repository.LeaderboardRepository
	lockWindow  time.Duration
	clock       Clock
}

func NewTierService(users repository.UserRepository, tiers repository.TierRepository, leaderboard repository.LeaderboardRepository, lockWindow time.Duration, clock Clock) TierService {
	return &tierService{
		users:       users,
		tiers:       tiers,
		leaderboard: leaderboard,
		lockWindow:  lockWindow,
		clock:       clock,
	}
}

func (s *tierService) SetTier(ctx context.Context, fid uint64, newTier int) (*TierChangeResult, error) {
	cfg, err := s.tiers.GetByVersion(ctx, newTier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidInput
		}
		return nil, err
	}

	now := s.clock.Now()
	ok, err := s.users.SetTier(ctx, fid, newTier, now, now.Add(s.lockWindow))
	if err != nil {
		return nil, err
	}
	if !ok {
		// Distinguish an unknown user from a locked one.
		if _, err := s.users.FindByFID(ctx, fid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.ErrNotFound
			}
			return nil, err
		}
		return nil, apperror.ErrTierLocked
	}

	user, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		return nil, err
	}

	rank, err := s.leaderboard.RankOf(ctx, user, model.MetricScore)
	if err != nil {
		return nil, err
	}

	return &TierChangeResult{User: user, Rank: rank, Config: cfg}, nil
}

func (s *tierService) ListTiers(ctx context.Context) ([]model.TierConfig, error) {
	return s.tiers.ListAll(ctx)
}
