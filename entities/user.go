package entities

import "time"

type User struct {
	Phone      string  `gorm:"primaryKey" json:"phone"`
	Name       string  `json:"name"`
	Language   string  `json:"language"` // en|hi|mr|te|ta|kn|ml
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	City       string  `json:"city"`
	HasSeenTour bool   `json:"has_seen_tour"`

	FarmDetails  *FarmDetails        `gorm:"serializer:json" json:"farm_details,omitempty"`
	SoilCard     *SoilHealthCard     `gorm:"serializer:json" json:"soil_card,omitempty"`
	Appointments []Appointment       `gorm:"serializer:json" json:"appointments,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type FarmDetails struct {
	Address    string        `json:"address"`
	Size       string        `json:"size"`
	Unit       string        `json:"unit"`
	SoilType   string        `json:"soil_type"`
	Irrigation string        `json:"irrigation"` // well|canal|rainfed|drip
	Crops      []CropHistory `json:"crops,omitempty"`
}

type CropHistory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Season    string `json:"season"`
	Year      string `json:"year"`
	Area      string `json:"area"`
	AreaUnit  string `json:"area_unit"`
	Yield     string `json:"yield"`
	YieldUnit string `json:"yield_unit"`
	Chemicals string `json:"chemicals"`
}

type SoilHealthCard struct {
	Data       string    `json:"data"` // base64 image
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
	Analysis   string    `json:"analysis,omitempty"`
}

type Appointment struct {
	ID     string `json:"id"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // hh:mm AM/PM
	Status string `json:"status"` // Pending|Confirmed|Completed|Cancelled
}
