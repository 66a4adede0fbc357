// Package schedule expands a sparse crop timeline into a day-by-day calendar
// and tracks sequential task completion over it.
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"krishisakhi/entities"
)

const (
	defaultDuration = 120
	initialStage    = "Land Preparation"
	fillerTime      = "09:00 AM"
	fillerActivity  = "Routine Care & Observation"
)

// DaySchedule is one calendar day with its ordered events.
type DaySchedule struct {
	Day    int                      `json:"day"`
	Events []entities.TimelineEvent `json:"events"`
}

// TaskRef identifies one expanded task by day and intra-day position.
type TaskRef struct {
	Day        int `json:"day"`
	EventIndex int `json:"eventIndex"`
}

var clockRe = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)`)

// ClockMinutes converts an "hh:mm AM/PM" string to minutes since midnight.
// Strings that do not parse map to 0 so they sort first; this is a defined
// fallback, not an error.
func ClockMinutes(t string) int {
	m := clockRe.FindStringSubmatch(t)
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	switch strings.ToUpper(m[3]) {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}
	return h*60 + min
}

// Expand builds the dense calendar for a timeline: every day from 1 to the
// cycle duration gets at least one event. Recurring events (endDay set) are
// replicated once per day of their span; empty days receive a routine-care
// filler carrying the most recent stage forward.
func Expand(timeline []entities.TimelineEvent, durationDays int) []DaySchedule {
	daysMap := map[int][]entities.TimelineEvent{}
	for _, ev := range timeline {
		if ev.EndDay > ev.Day {
			for d := ev.Day; d <= ev.EndDay; d++ {
				rep := ev
				rep.Day = d
				rep.EndDay = 0
				daysMap[d] = append(daysMap[d], rep)
			}
		} else {
			daysMap[ev.Day] = append(daysMap[ev.Day], ev)
		}
	}

	duration := durationDays
	if duration <= 0 {
		maxDay := 0
		for _, ev := range timeline {
			if ev.Day > maxDay {
				maxDay = ev.Day
			}
			if ev.EndDay > maxDay {
				maxDay = ev.EndDay
			}
		}
		if maxDay > 0 {
			duration = maxDay
		} else {
			duration = defaultDuration
		}
	}

	out := make([]DaySchedule, 0, duration)
	currentStage := initialStage
	for day := 1; day <= duration; day++ {
		events := daysMap[day]

		// Stage carries forward from the first staged event of the day,
		// in input order, before any time sorting.
		for _, ev := range events {
			if ev.Stage != "" {
				currentStage = ev.Stage
				break
			}
		}

		if len(events) == 0 {
			events = []entities.TimelineEvent{{
				Day:         day,
				Time:        fillerTime,
				Stage:       currentStage,
				Activity:    fillerActivity,
				Description: fmt.Sprintf("Monitor crop health. Ensure soil moisture is adequate for %s. Check for any early signs of pests.", currentStage),
			}}
		} else {
			sort.SliceStable(events, func(i, j int) bool {
				return ClockMinutes(events[i].Time) < ClockMinutes(events[j].Time)
			})
		}

		out = append(out, DaySchedule{Day: day, Events: events})
	}
	return out
}

// Flatten linearizes the calendar day-ascending, then intra-day index
// ascending. This order defines what "previous task" means.
func Flatten(days []DaySchedule) []TaskRef {
	var flat []TaskRef
	for _, d := range days {
		for idx := range d.Events {
			flat = append(flat, TaskRef{Day: d.Day, EventIndex: idx})
		}
	}
	return flat
}
