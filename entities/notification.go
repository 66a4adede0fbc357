package entities

// Notification payloads are tagged variants carrying data only; rendering is
// the client's concern. Exactly one payload field matching Kind is set.
type Notification struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Time   string `json:"time"`
	Unread bool   `json:"unread"`
	Kind   string `json:"kind"` // weather|text|market

	Weather *WeatherSummary `json:"weather,omitempty"`
	Text    *TextMessage    `json:"text,omitempty"`
	Market  *MarketAlert    `json:"market,omitempty"`
}

type WeatherSummary struct {
	MaxTemp   float64 `json:"max_temp"`
	MinTemp   float64 `json:"min_temp"`
	Condition string  `json:"condition"`
	IsRainy   bool    `json:"is_rainy"`
}

type TextMessage struct {
	Body string `json:"body"`
}

type MarketAlert struct {
	Crop   string  `json:"crop"`
	Price  float64 `json:"price"`
	Market string  `json:"market"`
}
