package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreakFirstLogin(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, nextStreak(nil, at, 0))
}

func TestNextStreakSameDayKeeps(t *testing.T) {
	last := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	at := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, nextStreak(&last, at, 4))
}

func TestNextStreakConsecutiveDayExtends(t *testing.T) {
	last := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	at := time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 5, nextStreak(&last, at, 4))
}

func TestNextStreakGapResets(t *testing.T) {
	last := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, nextStreak(&last, at, 12))
}

func TestNextStreakUsesUTCDayBoundary(t *testing.T) {
	// 20:00 UTC-5 on the 9th is 01:00 UTC on the 10th; a login later on the
	// UTC 10th is the same day, not the next.
	est := time.FixedZone("EST", -5*3600)
	last := time.Date(2026, 3, 9, 20, 0, 0, 0, est)
	at := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, nextStreak(&last, at, 3))
}
