package service

import (
	"math"
	"time"
)

const (
	// BaseClickPower is the score credited for a streak of 1.
	BaseClickPower = 100
	// StreakPowerStep is the extra power per consecutive day.
	StreakPowerStep = 10
	// ReputationPowerScale converts the neynar score (0..1) into the
	// display-only reputation bonus.
	ReputationPowerScale = 100
	// StreakBonusCap caps the display-only streak bonus.
	StreakBonusCap = 30
)

// DateUTC truncates t to its UTC calendar date.
func DateUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CanClick reports whether a click is allowed today. True iff the user
// never clicked or last clicked on a different calendar date.
func CanClick(lastClick *time.Time, today time.Time) bool {
	if lastClick == nil {
		return true
	}
	return !DateUTC(*lastClick).Equal(DateUTC(today))
}

// NextStreak returns the streak value the click being performed should
// record: previous streak + 1 when the last click was exactly
// yesterday, otherwise a reset to 1.
func NextStreak(lastClick *time.Time, streak int, today time.Time) int {
	if lastClick == nil {
		return 1
	}
	if DateUTC(*lastClick).AddDate(0, 0, 1).Equal(DateUTC(today)) {
		return streak + 1
	}
	return 1
}

// ClickPower is the server-authoritative score credit for a click.
// It is computed from the post-update streak, so the first click of a
// streak is worth exactly BaseClickPower.
func ClickPower(streak int) int64 {
	if streak < 1 {
		streak = 1
	}
	return int64(BaseClickPower + (streak-1)*StreakPowerStep)
}

// DisplayPower is the advisory figure shown in the client. It composes
// the base power with a reputation bonus and a capped streak bonus and
// never feeds back into the ledger.
func DisplayPower(streak int, neynarScore float64) int64 {
	streakBonus := streak
	if streakBonus > StreakBonusCap {
		streakBonus = StreakBonusCap
	}
	return int64(BaseClickPower) + int64(math.Floor(ReputationPowerScale*neynarScore)) + int64(streakBonus)
}
