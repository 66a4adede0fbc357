package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisakhi/entities"
)

var trackerNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// assertPrefix verifies the central invariant: completed tasks form a gapless
// prefix of the flattened order.
func assertPrefix(t *testing.T, days []DaySchedule, progress []entities.TaskProgress) {
	t.Helper()
	flat := Flatten(days)
	seenIncomplete := false
	for _, ref := range flat {
		if IsComplete(progress, ref.Day, ref.EventIndex) {
			assert.False(t, seenIncomplete, "gap before completed task %+v", ref)
		} else {
			seenIncomplete = true
		}
	}
}

func sampleDays() []DaySchedule {
	timeline := []entities.TimelineEvent{
		{Day: 1, Stage: "Sowing", Activity: "Sow seeds", Time: "08:00 AM"},
		{Day: 3, EndDay: 5, Activity: "Water", Time: "07:00 AM"},
	}
	return Expand(timeline, 6)
}

func TestToggleSequentialCompletion(t *testing.T) {
	days := sampleDays()
	flat := Flatten(days)
	require.Len(t, flat, 6)

	var progress []entities.TaskProgress
	var err error
	for _, ref := range flat {
		progress, err = Toggle(days, progress, ref.Day, ref.EventIndex, trackerNow)
		require.NoError(t, err)
		assertPrefix(t, days, progress)
	}
	completed, total := Stats(days, progress)
	assert.Equal(t, 6, completed)
	assert.Equal(t, 6, total)
}

func TestToggleRejectsOutOfOrder(t *testing.T) {
	days := sampleDays()
	var progress []entities.TaskProgress
	var err error

	// Complete days 1..3 in order.
	for _, ref := range Flatten(days)[:3] {
		progress, err = Toggle(days, progress, ref.Day, ref.EventIndex, trackerNow)
		require.NoError(t, err)
	}

	// Day 5 before day 4 must be rejected and leave state untouched.
	before := len(progress)
	got, err := Toggle(days, progress, 5, 0, trackerNow)
	assert.ErrorIs(t, err, ErrPreviousIncomplete)
	assert.Len(t, got, before)
	assertPrefix(t, days, got)
}

func TestToggleCascadingUncheck(t *testing.T) {
	days := sampleDays()
	flat := Flatten(days)
	var progress []entities.TaskProgress
	var err error
	for _, ref := range flat {
		progress, err = Toggle(days, progress, ref.Day, ref.EventIndex, trackerNow)
		require.NoError(t, err)
	}

	// Unchecking position 2 removes positions 2..5 and keeps 0..1.
	progress, err = Toggle(days, progress, flat[2].Day, flat[2].EventIndex, trackerNow)
	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.True(t, IsComplete(progress, flat[0].Day, flat[0].EventIndex))
	assert.True(t, IsComplete(progress, flat[1].Day, flat[1].EventIndex))
	assert.False(t, IsComplete(progress, flat[2].Day, flat[2].EventIndex))
	assertPrefix(t, days, progress)
}

func TestToggleUnknownTask(t *testing.T) {
	days := sampleDays()
	_, err := Toggle(days, nil, 99, 0, trackerNow)
	assert.ErrorIs(t, err, ErrUnknownTask)

	_, err = Toggle(days, nil, 1, 7, trackerNow)
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	days := sampleDays()
	flat := Flatten(days)
	first, err := Toggle(days, nil, flat[0].Day, flat[0].EventIndex, trackerNow)
	require.NoError(t, err)
	second, err := Toggle(days, first, flat[1].Day, flat[1].EventIndex, trackerNow)
	require.NoError(t, err)

	assert.Len(t, first, 1, "earlier snapshot must stay intact")
	assert.Len(t, second, 2)
}

func TestGuidedCompletionFlow(t *testing.T) {
	// Timeline from the reference scenario: sow on day 1, water days 3-5,
	// six-day cycle.
	days := sampleDays()
	require.Len(t, days, 6)
	assert.Equal(t, "Sow seeds", days[0].Events[0].Activity)
	assert.Equal(t, "Routine Care & Observation", days[1].Events[0].Activity)
	assert.Equal(t, "Sowing", days[1].Events[0].Stage)
	for d := 3; d <= 5; d++ {
		assert.Equal(t, "Water", days[d-1].Events[0].Activity)
	}
	assert.Equal(t, "Routine Care & Observation", days[5].Events[0].Activity)
	assert.Equal(t, "Sowing", days[5].Events[0].Stage)

	var progress []entities.TaskProgress
	var err error
	for _, ref := range Flatten(days)[:3] {
		progress, err = Toggle(days, progress, ref.Day, ref.EventIndex, trackerNow)
		require.NoError(t, err)
	}
	// Day 4 before day 3's water would be fine (day 3 done); day 5 first is not.
	_, err = Toggle(days, progress, 5, 0, trackerNow)
	assert.ErrorIs(t, err, ErrPreviousIncomplete)
	progress, err = Toggle(days, progress, 4, 0, trackerNow)
	require.NoError(t, err)
	completed, total := Stats(days, progress)
	assert.Equal(t, 4, completed)
	assert.Equal(t, 6, total)
}
