package service

import (
	"fmt"
	"strings"

	"krishisakhi/entities"
)

// ValidateRecommendation checks the structural invariants of a plan template
// before it may become a tracked cycle. Unparseable event times are allowed;
// they fall back to midnight during expansion.
func ValidateRecommendation(rec entities.CropRecommendation) error {
	if strings.TrimSpace(rec.CropName) == "" {
		return fmt.Errorf("cropName is required")
	}
	if rec.DurationDays < 1 {
		return fmt.Errorf("durationDays must be at least 1")
	}
	if rec.SuitabilityScore < 0 || rec.SuitabilityScore > 100 {
		return fmt.Errorf("suitabilityScore must be in 0..100")
	}
	for i, ev := range rec.Timeline {
		if ev.Day < 1 {
			return fmt.Errorf("timeline[%d]: day must be at least 1", i)
		}
		if ev.EndDay != 0 && ev.EndDay < ev.Day {
			return fmt.Errorf("timeline[%d]: endDay %d is before day %d", i, ev.EndDay, ev.Day)
		}
	}
	return nil
}
