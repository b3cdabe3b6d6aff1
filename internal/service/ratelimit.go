package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed request guards. Best effort: a nil client disables
// them, and the conditional updates in the store stay authoritative.

func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, fid uint64, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:user:%d:%s", fid, action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// CheckAndSetDailyGuard marks today's click for the user. Returns
// false when the mark already exists, i.e. a click was already
// credited (or is being credited) today.
func CheckAndSetDailyGuard(ctx context.Context, rdb *redis.Client, fid uint64, day time.Time) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := dailyGuardKey(fid, day)

	// 48h TTL comfortably outlives the day the key describes.
	wasSet, err := rdb.SetNX(ctx, key, "clicked", 48*time.Hour).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check daily guard in redis: %w", err)
	}

	return wasSet, nil
}

// ClearDailyGuard removes the mark so a click whose store update
// failed can be retried.
func ClearDailyGuard(ctx context.Context, rdb *redis.Client, fid uint64, day time.Time) error {
	if rdb == nil {
		return nil
	}
	_, err := rdb.Del(ctx, dailyGuardKey(fid, day)).Result()
	return err
}

func dailyGuardKey(fid uint64, day time.Time) string {
	return fmt.Sprintf("click:user:%d:%s", fid, day.UTC().Format("2006-01-02"))
}
