// Package weather wraps the tsukumijima city forecast API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// IWeather defines the interface for the weather forecast client.
type IWeather interface {
	// CityForecast fetches the forecast for a JMA city code, e.g. "130010".
	CityForecast(ctx context.Context, cityCode string) (*Response, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new weather client with the given configuration.
func New(cfg Config) (IWeather, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &clientImpl{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient}, nil
}

// CityForecast fetches the forecast for one city.
func (c *clientImpl) CityForecast(ctx context.Context, cityCode string) (*Response, error) {
	if cityCode == "" {
		return nil, fmt.Errorf("weather: city code is required")
	}

	url := fmt.Sprintf("%s/forecast/city/%s", c.baseURL, cityCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("weather: failed to decode response: %w", err)
	}
	return &result, nil
}
