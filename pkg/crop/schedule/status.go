package schedule

import (
	"sort"
	"time"

	"krishisakhi/entities"
)

// CycleStatus is the dashboard summary for one active cycle.
type CycleStatus struct {
	DayNumber    int                     `json:"day_number"`
	TotalDays    int                     `json:"total_days"`
	Percent      int                     `json:"percent"`
	CurrentStage string                  `json:"current_stage"`
	NextTask     *entities.TimelineEvent `json:"next_task,omitempty"`
	Health       Health                  `json:"health"`
}

// Status derives the dashboard view of a cycle as of now.
func Status(c *entities.CropCycle, now time.Time) CycleStatus {
	dayNumber := CurrentDay(c.StartDate, now)

	totalDays := c.DurationDays
	if totalDays <= 0 {
		totalDays = defaultDuration
	}
	percent := int(float64(dayNumber)/float64(totalDays)*100 + 0.5)
	if percent > 100 {
		percent = 100
	}

	sorted := make([]entities.TimelineEvent, len(c.Timeline))
	copy(sorted, c.Timeline)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	currentStage := "Germination"
	for _, ev := range sorted {
		if ev.Day <= dayNumber && ev.Stage != "" {
			currentStage = ev.Stage
		}
	}

	var next *entities.TimelineEvent
	for i := range sorted {
		if sorted[i].Day >= dayNumber {
			next = &sorted[i]
			break
		}
	}

	return CycleStatus{
		DayNumber:    dayNumber,
		TotalDays:    totalDays,
		Percent:      percent,
		CurrentStage: currentStage,
		NextTask:     next,
		Health:       Compliance(c.Timeline, c.Progress, dayNumber),
	}
}
