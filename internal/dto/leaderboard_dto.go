package dto

import "github.com/cubehq/dailycube-backend/internal/service"

type LeaderboardEntry struct {
	FID       uint64  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar,omitempty"`
	Score     int64   `json:"score"`
	Rewards   string  `json:"rewards"`
	Rank      int64   `json:"rank"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	Total   int64              `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Viewer  *LeaderboardEntry  `json:"viewer,omitempty"`
}

func NewLeaderboardEntry(r service.RankedUser) LeaderboardEntry {
	return LeaderboardEntry{
		FID:       r.User.FID,
		Username:  r.User.Username,
		AvatarURL: r.User.AvatarURL,
		Score:     r.User.Score,
		Rewards:   r.User.Rewards.String(),
		Rank:      r.Rank,
	}
}
