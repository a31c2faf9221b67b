package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastPayload = `{
	"current": {
		"temperature_2m": -12.5,
		"apparent_temperature": -18.0,
		"wind_speed_10m": 4.2,
		"weather_code": 73
	},
	"daily": {
		"temperature_2m_max": [-10.0],
		"temperature_2m_min": [-15.5],
		"precipitation_sum": [1.2]
	}
}`

func TestOpenMeteoToday(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "55.7500", r.URL.Query().Get("latitude"))
		assert.Equal(t, "37.6100", r.URL.Query().Get("longitude"))
		w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	provider := &OpenMeteo{BaseURL: srv.URL, Client: srv.Client()}

	c, err := provider.Today(context.Background(), 55.75, 37.61)
	require.NoError(t, err)

	assert.InDelta(t, -12.5, c.Temperature, 0.001)
	assert.InDelta(t, -18.0, c.FeelsLike, 0.001)
	assert.InDelta(t, 4.2, c.WindSpeed, 0.001)
	assert.Equal(t, 73, c.Code)
	assert.InDelta(t, -15.5, c.TempMin, 0.001)
	assert.InDelta(t, -10.0, c.TempMax, 0.001)
	assert.InDelta(t, 1.2, c.Precipitation, 0.001)
}

func TestOpenMeteoTodayBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	provider := &OpenMeteo{BaseURL: srv.URL, Client: srv.Client()}

	_, err := provider.Today(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	text := Format(&Conditions{
		Temperature:   -12.5,
		FeelsLike:     -18.0,
		WindSpeed:     4.2,
		Code:          73,
		TempMin:       -15.5,
		TempMax:       -10.0,
		Precipitation: 1.2,
	})

	assert.Contains(t, text, "-12.5°C")
	assert.Contains(t, text, "snow")
	assert.Contains(t, text, "feels like -18.0°C")
	assert.Contains(t, text, "Wind: 4.2 m/s")
	// The stats line is always last.
	assert.Contains(t, text, "Today's range: -15.5°C to -10.0°C")
}

func TestFormatUnknownCode(t *testing.T) {
	text := Format(&Conditions{Code: 12345})
	assert.Contains(t, text, "unknown")
}

func TestLocations(t *testing.T) {
	l := NewLocations()

	_, ok := l.Get(7)
	assert.False(t, ok)

	l.Set(7, Point{Lat: 55.75, Lon: 37.61})
	p, ok := l.Get(7)
	require.True(t, ok)
	assert.InDelta(t, 55.75, p.Lat, 0.001)

	l.Set(8, Point{Lat: 59.93, Lon: 30.33})
	all := l.All()
	assert.Len(t, all, 2)

	// The snapshot is detached from the registry.
	delete(all, 7)
	_, ok = l.Get(7)
	assert.True(t, ok)
}
