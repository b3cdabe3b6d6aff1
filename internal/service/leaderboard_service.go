package service

import (
	"context"
	"log"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/repository"
)

type RankedUser struct {
	User model.User
	Rank int64
}

type LeaderboardPage struct {
	Entries []RankedUser
	Total   int64
	// Viewer is set when a viewer id was requested and their entry is
	// not already on the page.
	Viewer *RankedUser
}

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, metric model.RankMetric, limit, offset int, viewerFID *uint64) (*LeaderboardPage, error)
}

type leaderboardService struct {
	repo  repository.LeaderboardRepository
	users repository.UserRepository
}

func NewLeaderboardService(repo repository.LeaderboardRepository, users repository.UserRepository) LeaderboardService {
	return &leaderboardService{
		repo:  repo,
		users: users,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, metric model.RankMetric, limit, offset int, viewerFID *uint64) (*LeaderboardPage, error) {
	users, err := s.repo.List(ctx, metric, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	page := &LeaderboardPage{
		Entries: make([]RankedUser, 0, len(users)),
		Total:   total,
	}

	onPage := false
	for i, u := range users {
		// Ordinal position in the listing; agrees with RankOf because
		// both follow the same total order.
		page.Entries = append(page.Entries, RankedUser{User: u, Rank: int64(offset + i + 1)})
		if viewerFID != nil && u.FID == *viewerFID {
			onPage = true
		}
	}

	if viewerFID != nil && !onPage {
		page.Viewer = s.pinViewer(ctx, metric, *viewerFID)
	}

	return page, nil
}

// pinViewer is best effort: the page is still useful without the
// pinned entry, so failures degrade rather than abort.
func (s *leaderboardService) pinViewer(ctx context.Context, metric model.RankMetric, fid uint64) *RankedUser {
	user, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		return nil
	}

	rank, err := s.repo.RankOf(ctx, user, metric)
	if err != nil {
		log.Printf("failed to resolve rank for pinned viewer %d: %v", fid, err)
		return nil
	}

	return &RankedUser{User: *user, Rank: rank}
}
