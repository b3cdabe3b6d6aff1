package service

import (
	"context"
	"errors"

	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RewardSyncResult struct {
	Success       bool
	ActualRewards decimal.Decimal
}

type RewardService interface {
	// SyncCollectedFees credits an on-chain fee collection to the user
	// bound to the target address. A missing target is not an error;
	// the caller is told the credit did not land.
	SyncCollectedFees(ctx context.Context, address string, amount decimal.Decimal) (*RewardSyncResult, error)
}

type rewardService struct {
	users repository.UserRepository
	clock Clock
}

func NewRewardService(users repository.UserRepository, clock Clock) RewardService {
	return &rewardService{
		users: users,
		clock: clock,
	}
}

func (s *rewardService) SyncCollectedFees(ctx context.Context, address string, amount decimal.Decimal) (*RewardSyncResult, error) {
	if amount.IsNegative() {
		return nil, apperror.ErrInvalidInput
	}

	user, err := s.users.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RewardSyncResult{Success: false}, nil
		}
		return nil, err
	}

	if err := s.users.AddRewards(ctx, user.FID, amount, s.clock.Now()); err != nil {
		return nil, err
	}

	updated, err := s.users.FindByFID(ctx, user.FID)
	if err != nil {
		return nil, err
	}

	return &RewardSyncResult{Success: true, ActualRewards: updated.ActualRewards}, nil
}
