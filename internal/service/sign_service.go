package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SignService interface {
	// Sign attests the user's current score for redemption by the
	// claimant address.
	Sign(ctx context.Context, fid uint64, claimant string) (*SignedClaim, error)
}

type signService struct {
	users     repository.UserRepository
	signer    *RewardSigner
	rdb       *redis.Client
	rateLimit time.Duration
}

// NewSignService accepts a nil signer; requests then fail with a
// configuration error rather than producing an unverifiable signature.
func NewSignService(users repository.UserRepository, signer *RewardSigner, rdb *redis.Client, rateLimit time.Duration) SignService {
	return &signService{
		users:     users,
		signer:    signer,
		rdb:       rdb,
		rateLimit: rateLimit,
	}
}

func (s *signService) Sign(ctx context.Context, fid uint64, claimant string) (*SignedClaim, error) {
	if s.signer == nil {
		return nil, apperror.ErrSignerUnavailable
	}
	if !common.IsHexAddress(claimant) {
		return nil, apperror.ErrInvalidInput
	}

	// Signing is the one endpoint doing real crypto per request, so
	// bursts are throttled per user.
	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, fid, "sign", s.rateLimit)
	if err != nil {
		log.Printf("rate limit unavailable for user %d: %v", fid, err)
		allowed = true
	}
	if !allowed {
		return nil, apperror.ErrRateLimitExceeded
	}

	user, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return s.signer.Sign(common.HexToAddress(claimant), user.Score)
}
