package service

import (
	"context"
	"errors"
	"log"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ClickResult struct {
	User  *model.User
	Rank  int64
	Power int64
}

type ClickService interface {
	// Click performs the once-per-day credit for the user and returns
	// the updated record with its freshly resolved rank.
	Click(ctx context.Context, fid uint64) (*ClickResult, error)
}

type clickService struct {
	users       repository.UserRepository
	leaderboard repository.LeaderboardRepository
	rdb         *redis.Client
	clock       Clock
}

func NewClickService(users repository.UserRepository, leaderboard repository.LeaderboardRepository, rdb *redis.Client, clock Clock) ClickService {
	return &clickService{
		users:       users,
		leaderboard: leaderboard,
		rdb:         rdb,
		clock:       clock,
	}
}

// Click must never answer a losing same-day request with anything but
// the already-clicked error: no rate limiting happens on this path, the
// redis guard and the conditional update classify every duplicate.
func (s *clickService) Click(ctx context.Context, fid uint64) (*ClickResult, error) {
	user, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	today := DateUTC(s.clock.Now())
	if !CanClick(user.LastClickDate, today) {
		return nil, apperror.ErrAlreadyClicked
	}

	// Fast-path guard in redis. Best effort: on redis failure we fall
	// through to the conditional update, which stays authoritative.
	wasSet, err := CheckAndSetDailyGuard(ctx, s.rdb, fid, today)
	if err != nil {
		log.Printf("daily guard unavailable for user %d: %v", fid, err)
		wasSet = true
	}
	if !wasSet {
		return nil, apperror.ErrAlreadyClicked
	}

	streak := NextStreak(user.LastClickDate, user.Streak, today)
	power := ClickPower(streak)

	ok, err := s.users.ApplyClick(ctx, fid, today, streak, power, s.clock.Now())
	if err != nil {
		// Let the user retry once the store recovers.
		if clearErr := ClearDailyGuard(ctx, s.rdb, fid, today); clearErr != nil {
			log.Printf("failed to clear daily guard for user %d: %v", fid, clearErr)
		}
		return nil, err
	}
	if !ok {
		// A concurrent click won the conditional update.
		return nil, apperror.ErrAlreadyClicked
	}

	updated, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		return nil, err
	}

	rank, err := s.leaderboard.RankOf(ctx, updated, model.MetricScore)
	if err != nil {
		return nil, err
	}

	return &ClickResult{User: updated, Rank: rank, Power: power}, nil
}
