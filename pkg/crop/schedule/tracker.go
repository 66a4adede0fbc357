package schedule

import (
	"errors"
	"time"

	"krishisakhi/entities"
)

var (
	// ErrPreviousIncomplete signals an out-of-order completion attempt.
	ErrPreviousIncomplete = errors.New("complete the previous step first")
	// ErrUnknownTask signals a (day, eventIndex) pair outside the calendar.
	ErrUnknownTask = errors.New("task not found in schedule")
)

// IsComplete reports whether a progress record exists for the task.
func IsComplete(progress []entities.TaskProgress, day, eventIndex int) bool {
	for _, p := range progress {
		if p.Day == day && p.EventIndex == eventIndex {
			return true
		}
	}
	return false
}

// Toggle flips the completion state of one task and returns the new progress
// list. Completions must follow the flattened order exactly: marking a task
// complete requires its predecessor to be complete, and unchecking a task also
// unchecks every task after it, so completed tasks always form a prefix of the
// flattened sequence. The input slice is never mutated; on error it is
// returned unchanged.
func Toggle(days []DaySchedule, progress []entities.TaskProgress, day, eventIndex int, now time.Time) ([]entities.TaskProgress, error) {
	flat := Flatten(days)
	pos := -1
	for i, ref := range flat {
		if ref.Day == day && ref.EventIndex == eventIndex {
			pos = i
			break
		}
	}
	if pos == -1 {
		return progress, ErrUnknownTask
	}

	if IsComplete(progress, day, eventIndex) {
		// Cascading uncheck: drop this task and everything at or after it.
		removed := map[TaskRef]bool{}
		for _, ref := range flat[pos:] {
			removed[ref] = true
		}
		kept := make([]entities.TaskProgress, 0, len(progress))
		for _, p := range progress {
			if !removed[TaskRef{Day: p.Day, EventIndex: p.EventIndex}] {
				kept = append(kept, p)
			}
		}
		return kept, nil
	}

	if pos > 0 {
		prev := flat[pos-1]
		if !IsComplete(progress, prev.Day, prev.EventIndex) {
			return progress, ErrPreviousIncomplete
		}
	}
	out := make([]entities.TaskProgress, len(progress), len(progress)+1)
	copy(out, progress)
	out = append(out, entities.TaskProgress{Day: day, EventIndex: eventIndex, CompletedAt: now})
	return out, nil
}

// Stats returns completed and total task counts for the calendar.
func Stats(days []DaySchedule, progress []entities.TaskProgress) (completed, total int) {
	for _, d := range days {
		total += len(d.Events)
	}
	return len(progress), total
}
