package entities

import "time"

// TimelineEvent is one planned agronomic action. Day offsets are 1-based from
// cycle start; EndDay > Day means the event repeats every day in [Day, EndDay].
type TimelineEvent struct {
	Day         int    `json:"day"`
	EndDay      int    `json:"endDay,omitempty"`
	Time        string `json:"time"` // hh:mm AM/PM
	Stage       string `json:"stage,omitempty"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// CropRecommendation is an immutable plan template produced by the advisor.
type CropRecommendation struct {
	CropName         string          `json:"cropName"`
	SuitabilityScore int             `json:"suitabilityScore"` // 0-100
	Reason           string          `json:"reason"`
	DurationDays     int             `json:"durationDays"`
	Timeline         []TimelineEvent `json:"timeline"`
}

// TaskProgress records completion of one expanded task. At most one record per
// (Day, EventIndex) pair within a cycle.
type TaskProgress struct {
	Day         int       `json:"day"`
	EventIndex  int       `json:"eventIndex"`
	CompletedAt time.Time `json:"completedAt"`
}

// CropCycle is a recommendation instantiated for tracking against one user.
type CropCycle struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserPhone string    `gorm:"index" json:"user_phone"`
	StartDate time.Time `json:"startDate"`

	CropName         string          `json:"cropName"`
	SuitabilityScore int             `json:"suitabilityScore"`
	Reason           string          `json:"reason"`
	DurationDays     int             `json:"durationDays"`
	Timeline         []TimelineEvent `gorm:"serializer:json" json:"timeline"`
	Progress         []TaskProgress  `gorm:"serializer:json" json:"progress"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
