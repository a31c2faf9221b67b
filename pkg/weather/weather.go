// Package weather fetches forecasts from Open-Meteo and renders them as
// display strings. Locations are raw coordinates; the bot does no geocoding.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Conditions is the subset of the forecast the bot displays.
type Conditions struct {
	Temperature   float64
	FeelsLike     float64
	WindSpeed     float64
	Code          int
	TempMin       float64
	TempMax       float64
	Precipitation float64
}

// Provider produces today's conditions for a coordinate pair.
type Provider interface {
	Today(ctx context.Context, lat, lon float64) (*Conditions, error)
}

// OpenMeteo is the Open-Meteo-backed Provider.
type OpenMeteo struct {
	BaseURL string
	Client  *http.Client
}

func NewOpenMeteo() *OpenMeteo {
	return &OpenMeteo{
		BaseURL: "https://api.open-meteo.com/v1/forecast",
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (o *OpenMeteo) Today(ctx context.Context, lat, lon float64) (*Conditions, error) {
	url := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f"+
			"&current=temperature_2m,weather_code,apparent_temperature,wind_speed_10m"+
			"&daily=temperature_2m_max,temperature_2m_min,precipitation_sum"+
			"&timezone=auto&forecast_days=1",
		o.BaseURL, lat, lon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo: unexpected status %s", resp.Status)
	}

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			FeelsLike   float64 `json:"apparent_temperature"`
			WindSpeed   float64 `json:"wind_speed_10m"`
			Code        int     `json:"weather_code"`
		} `json:"current"`
		Daily struct {
			TempMax []float64 `json:"temperature_2m_max"`
			TempMin []float64 `json:"temperature_2m_min"`
			Precip  []float64 `json:"precipitation_sum"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	c := &Conditions{
		Temperature: payload.Current.Temperature,
		FeelsLike:   payload.Current.FeelsLike,
		WindSpeed:   payload.Current.WindSpeed,
		Code:        payload.Current.Code,
	}
	if len(payload.Daily.TempMin) > 0 {
		c.TempMin = payload.Daily.TempMin[0]
	}
	if len(payload.Daily.TempMax) > 0 {
		c.TempMax = payload.Daily.TempMax[0]
	}
	if len(payload.Daily.Precip) > 0 {
		c.Precipitation = payload.Daily.Precip[0]
	}
	return c, nil
}

// WMO weather interpretation codes.
var codeDescriptions = map[int]string{
	0:  "☀️ clear sky",
	1:  "🌤 mostly clear",
	2:  "⛅ partly cloudy",
	3:  "☁️ overcast",
	45: "🌫 fog",
	48: "🌫 rime fog",
	51: "🌧 light drizzle",
	53: "🌧 drizzle",
	55: "🌧 dense drizzle",
	61: "🌧 light rain",
	63: "🌧 rain",
	65: "🌧 heavy rain",
	71: "🌨 light snow",
	73: "🌨 snow",
	75: "🌨 heavy snow",
	77: "🌨 snow grains",
	80: "🌧 rain showers",
	81: "🌧 rain showers",
	82: "🌧 violent rain showers",
	85: "🌨 snow showers",
	86: "🌨 heavy snow showers",
	95: "⛈ thunderstorm",
	96: "⛈ thunderstorm with hail",
	99: "⛈ heavy thunderstorm",
}

func describe(code int) string {
	if desc, ok := codeDescriptions[code]; ok {
		return desc
	}
	return "🌈 unknown"
}

func advice(temp float64) string {
	switch {
	case temp < -20:
		return "🥶 Freezing! Wear everything you own."
	case temp < -10:
		return "🧥 Cold. Don't forget a hat and gloves."
	case temp < 0:
		return "🧥 Chilly. Better take a coat."
	case temp < 10:
		return "🧥 Fresh. A light jacket won't hurt."
	case temp < 20:
		return "👕 Comfortable. Great for a walk!"
	default:
		return "👕 Warm. Light clothes will do."
	}
}

// Format renders the conditions, closing with the daily min/max stats line.
func Format(c *Conditions) string {
	return fmt.Sprintf(
		"🌡️ Now: %.1f°C %s (feels like %.1f°C)\n"+
			"🌬️ Wind: %.1f m/s\n"+
			"💧 Precipitation: %.1f mm\n"+
			"💡 %s\n\n"+
			"📈 Today's range: %.1f°C to %.1f°C",
		c.Temperature, describe(c.Code), c.FeelsLike,
		c.WindSpeed,
		c.Precipitation,
		advice(c.Temperature),
		c.TempMin, c.TempMax,
	)
}
