package domain

import (
	"sort"
	"time"
)

type StreakState struct {
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`
}

// ComputeStreaks derives the current and maximum consecutive-day practice
// streaks from a sparse daily-activity log. The reference day is injected
// so the computation stays deterministic; days with no entry count the
// same as days with zero solves and break a streak.
func ComputeStreaks(entries []*DailyActivity, asOf time.Time) StreakState {
	if len(entries) == 0 {
		return StreakState{}
	}

	solvedByDay := make(map[string]int, len(entries))
	for _, e := range entries {
		if _, ok := e.Day(); !ok {
			continue
		}
		solvedByDay[e.Date] += e.Solved
	}

	current := 0
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	for solvedByDay[day.Format(DateLayout)] > 0 {
		current++
		day = day.AddDate(0, 0, -1)
	}

	var activeDays []time.Time
	for key, solved := range solvedByDay {
		if solved <= 0 {
			continue
		}
		t, _ := time.Parse(DateLayout, key)
		activeDays = append(activeDays, t)
	}

	sort.Slice(activeDays, func(i, j int) bool {
		return activeDays[i].Before(activeDays[j])
	})

	longest := 0
	run := 0
	for i, d := range activeDays {
		if i > 0 && d.Sub(activeDays[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Today's active streak may itself be the historical maximum.
	if current > longest {
		longest = current
	}

	return StreakState{CurrentStreak: current, MaxStreak: longest}
}
