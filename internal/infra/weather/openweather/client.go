// Package openweather implements the weather.Provider contract against the
// OpenWeatherMap geocoding, weather, one-call and air pollution APIs.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rithika-paii/weather-api/internal/domain/weather"
)

// Config carries the endpoints and credential for one client instance.
// No ambient state: the key is injected at construction.
type Config struct {
	APIKey         string
	GeoBaseURL     string
	WeatherBaseURL string
	OneCallURL     string
	AirQualityURL  string
	Timeout        time.Duration
}

// Client issues the upstream HTTP calls. Safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode resolves a free-text city name. An empty result set is returned
// as-is; the caller decides whether that is an error.
func (c *Client) Geocode(ctx context.Context, city string) ([]weather.Place, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("limit", "1")

	var payload []geocodePlace
	if err := c.getJSON(ctx, c.cfg.GeoBaseURL+"/direct", params, &payload); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", city, err)
	}
	return toPlaces(payload), nil
}

// ReverseGeocode resolves coordinates back to place names.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) ([]weather.Place, error) {
	params := coordParams(lat, lon)
	params.Set("limit", "1")

	var payload []geocodePlace
	if err := c.getJSON(ctx, c.cfg.GeoBaseURL+"/reverse", params, &payload); err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}
	return toPlaces(payload), nil
}

// Current fetches current conditions by city name. A non-success status
// surfaces as *weather.UpstreamStatusError.
func (c *Client) Current(ctx context.Context, city string, units weather.UnitSystem) (weather.CurrentWeather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", string(units))

	var payload currentPayload
	if err := c.getJSON(ctx, c.cfg.WeatherBaseURL+"/weather", params, &payload); err != nil {
		return weather.CurrentWeather{}, err
	}
	return toCurrentWeather(payload), nil
}

// Forecast fetches the 5-day/3-hour bucket feed for a coordinate.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, units weather.UnitSystem) ([]weather.ForecastEntry, error) {
	params := coordParams(lat, lon)
	params.Set("units", string(units))

	var payload forecastPayload
	if err := c.getJSON(ctx, c.cfg.WeatherBaseURL+"/forecast", params, &payload); err != nil {
		return nil, err
	}
	return toForecastEntries(payload.List), nil
}

// OneCall fetches the combined feed. A non-success status returns the
// empty-value sentinel with a nil error so call sites can apply their
// defaults; transport and decode failures still propagate.
func (c *Client) OneCall(ctx context.Context, lat, lon float64, units weather.UnitSystem, exclude string) (weather.OneCallData, error) {
	params := coordParams(lat, lon)
	params.Set("units", string(units))
	if exclude != "" {
		params.Set("exclude", exclude)
	}

	var payload oneCallPayload
	if err := c.getJSON(ctx, c.cfg.OneCallURL, params, &payload); err != nil {
		var statusErr *weather.UpstreamStatusError
		if errors.As(err, &statusErr) {
			return weather.OneCallData{}, nil
		}
		return weather.OneCallData{}, err
	}
	return toOneCallData(payload), nil
}

// AirPollution fetches the air quality sample list for a coordinate.
func (c *Client) AirPollution(ctx context.Context, lat, lon float64) ([]weather.AirSample, error) {
	var payload airPollutionPayload
	if err := c.getJSON(ctx, c.cfg.AirQualityURL, coordParams(lat, lon), &payload); err != nil {
		return nil, err
	}

	samples := make([]weather.AirSample, 0, len(payload.List))
	for _, item := range payload.List {
		samples = append(samples, weather.AirSample{AQI: item.Main.AQI})
	}
	return samples, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("appid", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &weather.UpstreamStatusError{StatusCode: resp.StatusCode, Body: string(payload)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return params
}
