package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisakhi/entities"
)

func TestExpandCoversEveryDay(t *testing.T) {
	timeline := []entities.TimelineEvent{
		{Day: 1, Stage: "Sowing", Activity: "Sow seeds", Time: "08:00 AM"},
		{Day: 4, Activity: "Weeding", Time: "10:00 AM"},
	}
	days := Expand(timeline, 10)
	require.Len(t, days, 10)
	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
		assert.NotEmpty(t, d.Events, "day %d has no events", d.Day)
	}
}

func TestExpandRecurrence(t *testing.T) {
	timeline := []entities.TimelineEvent{
		{Day: 5, EndDay: 8, Activity: "Water", Time: "07:00 AM"},
	}
	days := Expand(timeline, 10)
	for _, d := range days {
		hasWater := false
		for _, ev := range d.Events {
			if ev.Activity == "Water" {
				hasWater = true
				assert.Equal(t, d.Day, ev.Day)
				assert.Zero(t, ev.EndDay, "replica on day %d must be single-day", d.Day)
			}
		}
		if d.Day >= 5 && d.Day <= 8 {
			assert.True(t, hasWater, "day %d should water", d.Day)
		} else {
			assert.False(t, hasWater, "day %d should not water", d.Day)
		}
	}
}

func TestExpandStageCarryForward(t *testing.T) {
	timeline := []entities.TimelineEvent{
		{Day: 3, Stage: "Sowing", Activity: "Sow seeds", Time: "08:00 AM"},
		{Day: 7, Stage: "Vegetative", Activity: "Top dressing", Time: "09:00 AM"},
	}
	days := Expand(timeline, 9)

	// Before any staged event the filler uses the initial stage.
	assert.Equal(t, "Land Preparation", days[0].Events[0].Stage)
	assert.Equal(t, "Land Preparation", days[1].Events[0].Stage)
	// Between staged events the last seen stage persists.
	assert.Equal(t, "Sowing", days[3].Events[0].Stage)
	assert.Equal(t, "Sowing", days[5].Events[0].Stage)
	// After the second staged event.
	assert.Equal(t, "Vegetative", days[7].Events[0].Stage)
	assert.Equal(t, "Vegetative", days[8].Events[0].Stage)
}

func TestExpandEmptyTimeline(t *testing.T) {
	days := Expand(nil, 0)
	require.Len(t, days, 120)
	for _, d := range days {
		require.Len(t, d.Events, 1)
		assert.Equal(t, "Routine Care & Observation", d.Events[0].Activity)
		assert.Equal(t, "Land Preparation", d.Events[0].Stage)
	}
}

func TestExpandDurationFromTimeline(t *testing.T) {
	timeline := []entities.TimelineEvent{
		{Day: 2, Activity: "Plough", Time: "06:00 AM"},
		{Day: 10, EndDay: 14, Activity: "Water", Time: "07:00 AM"},
	}
	days := Expand(timeline, 0)
	assert.Len(t, days, 14)
}

func TestExpandSortsByTime(t *testing.T) {
	timeline := []entities.TimelineEvent{
		{Day: 1, Activity: "Evening spray", Time: "05:30 PM"},
		{Day: 1, Activity: "Noon check", Time: "12:00 PM"},
		{Day: 1, Activity: "Midnight start", Time: "12:15 AM"},
		{Day: 1, Activity: "Morning water", Time: "07:00 AM"},
	}
	days := Expand(timeline, 1)
	got := []string{}
	for _, ev := range days[0].Events {
		got = append(got, ev.Activity)
	}
	assert.Equal(t, []string{"Midnight start", "Morning water", "Noon check", "Evening spray"}, got)
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 0, ClockMinutes("12:00 AM"))
	assert.Equal(t, 720, ClockMinutes("12:00 PM"))
	assert.Equal(t, 7*60, ClockMinutes("07:00 AM"))
	assert.Equal(t, 17*60+30, ClockMinutes("05:30 pm"))
	// Malformed strings are a defined fallback, not an error.
	assert.Equal(t, 0, ClockMinutes("morning"))
	assert.Equal(t, 0, ClockMinutes(""))
}

func TestFlattenOrder(t *testing.T) {
	timeline := []entities.TimelineEvent{
		{Day: 2, Activity: "B", Time: "08:00 AM"},
		{Day: 2, Activity: "C", Time: "04:00 PM"},
		{Day: 1, Activity: "A", Time: "09:00 AM"},
	}
	flat := Flatten(Expand(timeline, 3))
	require.Len(t, flat, 4) // day1 A, day2 B+C, day3 filler
	assert.Equal(t, TaskRef{Day: 1, EventIndex: 0}, flat[0])
	assert.Equal(t, TaskRef{Day: 2, EventIndex: 0}, flat[1])
	assert.Equal(t, TaskRef{Day: 2, EventIndex: 1}, flat[2])
	assert.Equal(t, TaskRef{Day: 3, EventIndex: 0}, flat[3])
}
