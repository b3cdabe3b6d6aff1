package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeUserRepo mimics the store's per-row conditional updates under a
// mutex, which is what makes the concurrency tests meaningful.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (r *fakeUserRepo) add(u model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := u
	r.users[u.FID] = &copied
}

func (r *fakeUserRepo) Upsert(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.FID]
	if !ok {
		copied := *user
		r.users[user.FID] = &copied
		return nil
	}

	existing.Username = user.Username
	existing.AvatarURL = user.AvatarURL
	existing.NeynarScore = user.NeynarScore
	if user.PrimaryAddress != nil {
		existing.PrimaryAddress = user.PrimaryAddress
	}
	return nil
}

func (r *fakeUserRepo) FindByFID(ctx context.Context, fid uint64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[fid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByAddress(ctx context.Context, address string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.PrimaryAddress != nil && strings.EqualFold(*user.PrimaryAddress, address) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ApplyClick(ctx context.Context, fid uint64, today time.Time, streak int, power int64, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[fid]
	if !ok {
		return false, nil
	}
	if user.LastClickDate != nil && DateUTC(*user.LastClickDate).Equal(DateUTC(today)) {
		return false, nil
	}

	day := DateUTC(today)
	user.Score += power
	user.Streak = streak
	user.LastClickDate = &day
	user.UpdatedAt = now
	return true, nil
}

func (r *fakeUserRepo) SetTier(ctx context.Context, fid uint64, version int, now, lockUntil time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[fid]
	if !ok {
		return false, nil
	}
	if now.Before(user.TierUpdatableAt) {
		return false, nil
	}

	user.Version = version
	user.TierUpdatableAt = lockUntil
	user.UpdatedAt = now
	return true, nil
}

func (r *fakeUserRepo) AddRewards(ctx context.Context, fid uint64, amount decimal.Decimal, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[fid]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Rewards = user.Rewards.Add(amount)
	user.ActualRewards = user.ActualRewards.Add(amount)
	user.UpdatedAt = now
	return nil
}

func (r *fakeUserRepo) CountReferrals(ctx context.Context, fid uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, user := range r.users {
		if user.ReferrerID != nil && *user.ReferrerID == fid {
			count++
		}
	}
	return count, nil
}

// fakeLeaderboardRepo derives ranks from the shared user map with the
// canonical RanksAhead predicate.
type fakeLeaderboardRepo struct {
	users *fakeUserRepo
}

func newFakeLeaderboardRepo(users *fakeUserRepo) *fakeLeaderboardRepo {
	return &fakeLeaderboardRepo{users: users}
}

func (r *fakeLeaderboardRepo) snapshot() []model.User {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	all := make([]model.User, 0, len(r.users.users))
	for _, user := range r.users.users {
		all = append(all, *user)
	}
	return all
}

func (r *fakeLeaderboardRepo) RankOf(ctx context.Context, user *model.User, metric model.RankMetric) (int64, error) {
	var ahead int64
	for _, other := range r.snapshot() {
		if other.FID == user.FID {
			continue
		}
		o := other
		if RanksAhead(&o, user, metric) {
			ahead++
		}
	}
	return ahead + 1, nil
}

func (r *fakeLeaderboardRepo) List(ctx context.Context, metric model.RankMetric, limit, offset int) ([]model.User, error) {
	all := r.snapshot()
	sort.Slice(all, func(i, j int) bool {
		return RanksAhead(&all[i], &all[j], metric)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeLeaderboardRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.snapshot())), nil
}

// fakeTaskRepo enforces the composite uniqueness the real table gets
// from its index.
type fakeTaskRepo struct {
	mu        sync.Mutex
	users     *fakeUserRepo
	completed map[uint64]map[string]bool
}

func newFakeTaskRepo(users *fakeUserRepo) *fakeTaskRepo {
	return &fakeTaskRepo{
		users:     users,
		completed: make(map[uint64]map[string]bool),
	}
}

func (r *fakeTaskRepo) ListCompleted(ctx context.Context, fid uint64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var taskIDs []string
	for taskID := range r.completed[fid] {
		taskIDs = append(taskIDs, taskID)
	}
	sort.Strings(taskIDs)
	return taskIDs, nil
}

func (r *fakeTaskRepo) Claim(ctx context.Context, fid uint64, taskID string, bonus int64, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.completed[fid][taskID] {
		return 0, gorm.ErrDuplicatedKey
	}

	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	user, ok := r.users.users[fid]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}

	if r.completed[fid] == nil {
		r.completed[fid] = make(map[string]bool)
	}
	r.completed[fid][taskID] = true

	user.Score += bonus
	user.UpdatedAt = now
	return user.Score, nil
}

func (r *fakeTaskRepo) HasCompleted(ctx context.Context, fid uint64, taskID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed[fid][taskID], nil
}

type fakeTierRepo struct {
	configs map[int]model.TierConfig
}

func newFakeTierRepo(configs ...model.TierConfig) *fakeTierRepo {
	repo := &fakeTierRepo{configs: make(map[int]model.TierConfig)}
	for _, cfg := range configs {
		repo.configs[cfg.Version] = cfg
	}
	return repo
}

func (r *fakeTierRepo) GetByVersion(ctx context.Context, version int) (*model.TierConfig, error) {
	cfg, ok := r.configs[version]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &cfg, nil
}

func (r *fakeTierRepo) ListAll(ctx context.Context) ([]model.TierConfig, error) {
	var all []model.TierConfig
	for _, cfg := range r.configs {
		all = append(all, cfg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Version < all[j].Version })
	return all, nil
}

type fakeNotificationRepo struct {
	mu     sync.Mutex
	tokens map[uint64]model.NotificationToken
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{tokens: make(map[uint64]model.NotificationToken)}
}

func (r *fakeNotificationRepo) Upsert(ctx context.Context, token *model.NotificationToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.UserFID] = *token
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, fid uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, fid)
	return nil
}

func (r *fakeNotificationRepo) FindByFID(ctx context.Context, fid uint64) (*model.NotificationToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[fid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &token, nil
}
