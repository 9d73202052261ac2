package weather

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Config holds the client configuration.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Response is the forecast payload for one city.
type Response struct {
	PublicTime string     `json:"publicTime"`
	Title      string     `json:"title"`
	Forecasts  []Forecast `json:"forecasts"`
}

// Forecast is one day's forecast.
type Forecast struct {
	Date         string            `json:"date"`
	DateLabel    string            `json:"dateLabel"`
	Telop        string            `json:"telop"`
	Detail       Detail            `json:"detail"`
	Temperature  Temperature       `json:"temperature"`
	ChanceOfRain map[string]string `json:"chanceOfRain"`
	Image        Image             `json:"image"`
}

// Detail is the long-form weather description.
type Detail struct {
	Weather string `json:"weather"`
	Wind    string `json:"wind"`
}

// Temperature holds min/max readings; either side may be absent.
type Temperature struct {
	Min *Reading `json:"min"`
	Max *Reading `json:"max"`
}

// Reading is a single temperature value.
type Reading struct {
	Celsius string `json:"celsius"`
}

// Image is the forecast icon.
type Image struct {
	URL string `json:"url"`
}

// RainChances extracts the known per-period probabilities as percentages,
// skipping the "--%" placeholder the API uses for past periods.
func (f Forecast) RainChances() []int {
	var probs []int
	for _, raw := range f.ChanceOfRain {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "--%" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSuffix(raw, "%")); err == nil {
			probs = append(probs, n)
		}
	}
	return probs
}

// AverageChanceOfRain averages the known per-period probabilities;
// 0 when none are reported.
func (f Forecast) AverageChanceOfRain() float64 {
	probs := f.RainChances()
	if len(probs) == 0 {
		return 0
	}
	sum := 0
	for _, p := range probs {
		sum += p
	}
	return float64(sum) / float64(len(probs))
}

// Rainy reports whether the day should be treated as a rain day:
// average probability at least 50% or the headline mentions rain.
func (f Forecast) Rainy() bool {
	return f.AverageChanceOfRain() >= 50 || strings.Contains(f.Telop, "雨")
}

// TemperatureSummary is a compact max/min string, e.g. "最高28°C/最低19°C".
func (f Forecast) TemperatureSummary() string {
	var parts []string
	if f.Temperature.Max != nil && f.Temperature.Max.Celsius != "" {
		parts = append(parts, fmt.Sprintf("最高%s°C", f.Temperature.Max.Celsius))
	}
	if f.Temperature.Min != nil && f.Temperature.Min.Celsius != "" {
		parts = append(parts, fmt.Sprintf("最低%s°C", f.Temperature.Min.Celsius))
	}
	return strings.Join(parts, "/")
}
