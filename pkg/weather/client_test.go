package weather

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionText(t *testing.T) {
	assert.Equal(t, "Clear Sky", ConditionText(0))
	assert.Equal(t, "Partly Cloudy", ConditionText(2))
	assert.Equal(t, "Foggy", ConditionText(45))
	assert.Equal(t, "Rainy", ConditionText(61))
	assert.Equal(t, "Snowy", ConditionText(73))
	assert.Equal(t, "Heavy Rain", ConditionText(81))
	assert.Equal(t, "Thunderstorm", ConditionText(95))
	assert.Equal(t, "Unknown", ConditionText(40))
}

func TestIsRainCode(t *testing.T) {
	assert.True(t, IsRainCode(61))
	assert.True(t, IsRainCode(95))
	assert.False(t, IsRainCode(0))
	assert.False(t, IsRainCode(45))
}

func TestFetchParsesForecast(t *testing.T) {
	body := `{
		"current": {"temperature_2m": 31.5, "relative_humidity_2m": 82, "weather_code": 63, "wind_speed_10m": 14},
		"hourly": {
			"time": ["2025-06-01T00:00","2025-06-01T01:00","2025-06-01T02:00"],
			"temperature_2m": [25, 24, 23],
			"precipitation_probability": [80, 70, 60],
			"wind_speed_10m": [10, 11, 12]
		},
		"daily": {
			"time": ["2025-06-01","2025-06-02"],
			"weather_code": [63, 1],
			"temperature_2m_max": [33, 34],
			"temperature_2m_min": [24, 25],
			"precipitation_probability_max": [90, 20]
		}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "latitude=")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	fixed := func() time.Time { return time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC) }
	c := NewWithClock(srv.URL, fixed)
	d, err := c.Fetch(21.1458, 79.0882)
	require.NoError(t, err)

	assert.Equal(t, 31.5, d.Temperature)
	assert.Equal(t, "Rainy", d.Condition)
	assert.True(t, d.IsRainy)
	assert.Equal(t, 82.0, d.Humidity)
	require.Len(t, d.Daily, 2)
	assert.Equal(t, "Rainy", d.Daily[0].Condition)
	assert.Equal(t, 33.0, d.Daily[0].MaxTemp)
	require.NotEmpty(t, d.Hourly)
	assert.Equal(t, "2025-06-01T00:00", d.Hourly[0].Time)
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Fetch(0, 0)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, 28.0, d.Temperature)
	assert.False(t, d.IsRainy)
}
