package schedule

import (
	"math"
	"time"

	"krishisakhi/entities"
)

// Health is the day-granular on-track signal shown on the dashboard. It is
// looser than the sequential prefix rule: it compares per-day counts only and
// never matches task identity within a day.
type Health string

const (
	HealthOnTrack   Health = "on_track"
	HealthAttention Health = "attention"
)

// Compliance checks that every day up to currentDay has at least as many
// completed tasks as the timeline schedules for it. Days with nothing
// scheduled (including filler-only days) are skipped.
func Compliance(timeline []entities.TimelineEvent, progress []entities.TaskProgress, currentDay int) Health {
	expected := map[int]int{}
	for _, ev := range timeline {
		end := ev.EndDay
		if end < ev.Day {
			end = ev.Day
		}
		for d := ev.Day; d <= end; d++ {
			expected[d]++
		}
	}

	for d := 1; d <= currentDay; d++ {
		exp := expected[d]
		if exp == 0 {
			continue
		}
		done := 0
		for _, p := range progress {
			if p.Day == d {
				done++
			}
		}
		if done < exp {
			return HealthAttention
		}
	}
	return HealthOnTrack
}

// CurrentDay converts elapsed wall time since cycle start into a 1-based day
// number, never below 1.
func CurrentDay(start, now time.Time) int {
	days := int(math.Ceil(now.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
