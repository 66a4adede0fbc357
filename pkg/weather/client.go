// Package weather wraps the open-meteo forecast API.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type HourlyForecast struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	PrecipProb    float64 `json:"precipitation_probability"`
	WindSpeed     float64 `json:"wind_speed"`
}

type DailyForecast struct {
	Date       string  `json:"date"`
	MaxTemp    float64 `json:"max_temp"`
	MinTemp    float64 `json:"min_temp"`
	PrecipProb float64 `json:"precipitation_probability"`
	Condition  string  `json:"condition"`
}

type Data struct {
	Temperature float64          `json:"temperature"`
	Condition   string           `json:"condition"`
	Humidity    float64          `json:"humidity"`
	WindSpeed   float64          `json:"wind_speed"`
	IsRainy     bool             `json:"is_rainy"`
	Hourly      []HourlyForecast `json:"hourly"`
	Daily       []DailyForecast  `json:"daily"`
}

type Client struct {
	base  string
	httpc *http.Client
	now   func() time.Time
}

func New(base string) *Client {
	return &Client{base: base, httpc: &http.Client{Timeout: 15 * time.Second}, now: time.Now}
}

// NewWithClock is used by tests to pin the hourly window start.
func NewWithClock(base string, now func() time.Time) *Client {
	c := New(base)
	c.now = now
	return c
}

// Default is the neutral fallback shown when the forecast service is
// unreachable.
func Default() *Data {
	return &Data{Temperature: 28, Condition: "Sunny", Humidity: 50, WindSpeed: 10}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		PrecipProb  []float64 `json:"precipitation_probability"`
		WindSpeed   []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weather_code"`
		MaxTemp     []float64 `json:"temperature_2m_max"`
		MinTemp     []float64 `json:"temperature_2m_min"`
		PrecipProb  []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// Fetch returns current conditions, the next 24 hourly slots and the 7-day
// outlook for a location.
func (c *Client) Fetch(lat, lng float64) (*Data, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m&hourly=temperature_2m,precipitation_probability,wind_speed_10m&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max&timezone=auto",
		c.base, lat, lng)
	resp, err := c.httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, err
	}

	d := &Data{
		Temperature: fr.Current.Temperature,
		Condition:   ConditionText(fr.Current.WeatherCode),
		Humidity:    fr.Current.Humidity,
		WindSpeed:   fr.Current.WindSpeed,
		IsRainy:     IsRainCode(fr.Current.WeatherCode),
	}

	// Next 24 hours starting at the current wall-clock hour.
	start := 0
	hourStart := c.now().Truncate(time.Hour)
	for i, ts := range fr.Hourly.Time {
		if t, err := time.Parse("2006-01-02T15:04", ts); err == nil && !t.Before(hourStart) {
			start = i
			break
		}
	}
	for i := start; i < len(fr.Hourly.Time) && i < start+24; i++ {
		h := HourlyForecast{Time: fr.Hourly.Time[i]}
		if i < len(fr.Hourly.Temperature) {
			h.Temperature = fr.Hourly.Temperature[i]
		}
		if i < len(fr.Hourly.PrecipProb) {
			h.PrecipProb = fr.Hourly.PrecipProb[i]
		}
		if i < len(fr.Hourly.WindSpeed) {
			h.WindSpeed = fr.Hourly.WindSpeed[i]
		}
		d.Hourly = append(d.Hourly, h)
	}

	for i, ts := range fr.Daily.Time {
		day := DailyForecast{Date: ts}
		if i < len(fr.Daily.MaxTemp) {
			day.MaxTemp = fr.Daily.MaxTemp[i]
		}
		if i < len(fr.Daily.MinTemp) {
			day.MinTemp = fr.Daily.MinTemp[i]
		}
		if i < len(fr.Daily.PrecipProb) {
			day.PrecipProb = fr.Daily.PrecipProb[i]
		}
		if i < len(fr.Daily.WeatherCode) {
			day.Condition = ConditionText(fr.Daily.WeatherCode[i])
		}
		d.Daily = append(d.Daily, day)
	}

	return d, nil
}

var rainCodes = map[int]bool{
	51: true, 53: true, 55: true, 61: true, 63: true, 65: true,
	80: true, 81: true, 82: true, 95: true, 96: true, 99: true,
}

func IsRainCode(code int) bool { return rainCodes[code] }

// ConditionText maps WMO weather codes to a short label.
func ConditionText(code int) string {
	switch {
	case code == 0:
		return "Clear Sky"
	case code >= 1 && code <= 3:
		return "Partly Cloudy"
	case code >= 45 && code <= 48:
		return "Foggy"
	case code >= 51 && code <= 67:
		return "Rainy"
	case code >= 71 && code <= 77:
		return "Snowy"
	case code >= 80 && code <= 82:
		return "Heavy Rain"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
