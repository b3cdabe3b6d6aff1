package dto

import (
	"time"

	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/service"
)

type SyncUserRequest struct {
	FID            uint64  `json:"id" binding:"required"`
	Username       string  `json:"username" binding:"required,max=100"`
	Avatar         string  `json:"avatar" binding:"omitempty,url"`
	NeynarScore    float64 `json:"neynar_score" binding:"omitempty,min=0,max=1"`
	PrimaryAddress string  `json:"primary_address" binding:"omitempty,eth_addr"`
	ReferrerID     *uint64 `json:"referrer_id"`
}

// UserResponse is the canonical record+rank shape shared by every
// endpoint that returns a user.
type UserResponse struct {
	FID             uint64    `json:"id"`
	Username        string    `json:"username"`
	AvatarURL       *string   `json:"avatar,omitempty"`
	Score           int64     `json:"score"`
	Streak          int       `json:"streak"`
	LastClickDate   *string   `json:"last_click_date,omitempty"`
	Version         int       `json:"version"`
	TierUpdatableAt time.Time `json:"tier_updatable_at"`
	PrimaryAddress  *string   `json:"primary_address,omitempty"`
	Rewards         string    `json:"rewards"`
	ActualRewards   string    `json:"actual_rewards"`
	Rank            int64     `json:"rank"`
	CanClick        bool      `json:"can_click"`
	DisplayPower    int64     `json:"display_power"`
}

func NewUserResponse(u *model.User, rank int64, now time.Time) UserResponse {
	resp := UserResponse{
		FID:             u.FID,
		Username:        u.Username,
		AvatarURL:       u.AvatarURL,
		Score:           u.Score,
		Streak:          u.Streak,
		Version:         u.Version,
		TierUpdatableAt: u.TierUpdatableAt,
		PrimaryAddress:  u.PrimaryAddress,
		Rewards:         u.Rewards.String(),
		ActualRewards:   u.ActualRewards.String(),
		Rank:            rank,
		CanClick:        service.CanClick(u.LastClickDate, now),
		DisplayPower:    service.DisplayPower(u.Streak, u.NeynarScore),
	}

	if u.LastClickDate != nil {
		d := service.DateUTC(*u.LastClickDate).Format("2006-01-02")
		resp.LastClickDate = &d
	}

	return resp
}
