package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the score ledger record. One row per mini-app participant,
// keyed by their stable numeric id (fid). Score, streak and
// last_click_date are only mutated together by the click handler;
// updated_at doubles as the rank tie-break.
type User struct {
	FID             uint64          `gorm:"primaryKey;autoIncrement:false" json:"fid"`
	Username        string          `gorm:"size:100" json:"username"`
	AvatarURL       *string         `gorm:"type:text" json:"avatar_url,omitempty"`
	NeynarScore     float64         `gorm:"not null;default:0" json:"neynar_score"`
	Score           int64           `gorm:"not null;default:0" json:"score"`
	Streak          int             `gorm:"not null;default:0" json:"streak"`
	LastClickDate   *time.Time      `gorm:"type:date" json:"last_click_date,omitempty"`
	Version         int             `gorm:"not null;default:1" json:"version"`
	TierUpdatableAt time.Time       `json:"tier_updatable_at"`
	PrimaryAddress  *string         `gorm:"size:42;index" json:"primary_address,omitempty"`
	Rewards         decimal.Decimal `gorm:"type:decimal(38,18);not null;default:0" json:"rewards"`
	ActualRewards   decimal.Decimal `gorm:"type:decimal(38,18);not null;default:0" json:"actual_rewards"`
	ReferrerID      *uint64         `gorm:"index" json:"referrer_id,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RankMetric selects the leaderboard sort attribute.
type RankMetric string

const (
	MetricScore   RankMetric = "score"
	MetricRewards RankMetric = "rewards"
)

func ParseRankMetric(s string) (RankMetric, bool) {
	switch RankMetric(s) {
	case MetricScore, "":
		return MetricScore, true
	case MetricRewards:
		return MetricRewards, true
	}
	return "", false
}
