package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rithika-paii/weather-api/internal/domain/compare"
	"github.com/rithika-paii/weather-api/internal/domain/outfit"
	"github.com/rithika-paii/weather-api/internal/domain/weather"
	"github.com/rithika-paii/weather-api/internal/infra/config"
	apperrors "github.com/rithika-paii/weather-api/pkg/errors"
)

func TestRouter_WeatherSuccess(t *testing.T) {
	stub := newStubServices()
	stub.weather.currentFn = func(ctx context.Context, city string, units weather.UnitSystem) (weather.CurrentWeather, error) {
		require.Equal(t, "Paris", city)
		require.Equal(t, weather.UnitImperial, units)
		return weather.CurrentWeather{City: "Paris", Temperature: 70.2, Condition: "clear sky"}, nil
	}

	recorder := performRequest("/weather?city=Paris&units=imperial", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got weather.CurrentWeather
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Paris", got.City)
	require.Equal(t, 70.2, got.Temperature)
}

func TestRouter_WeatherCoercesUnknownUnits(t *testing.T) {
	stub := newStubServices()
	stub.weather.currentFn = func(ctx context.Context, city string, units weather.UnitSystem) (weather.CurrentWeather, error) {
		require.Equal(t, weather.UnitMetric, units)
		return weather.CurrentWeather{City: city}, nil
	}

	recorder := performRequest("/weather?city=Paris&units=kelvin", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_WeatherMissingCity(t *testing.T) {
	recorder := performRequest("/weather", newRouterUnderTest(t, newStubServices()))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_WeatherNotFound(t *testing.T) {
	stub := newStubServices()
	stub.weather.currentFn = func(ctx context.Context, city string, units weather.UnitSystem) (weather.CurrentWeather, error) {
		return weather.CurrentWeather{}, apperrors.Wrap("not_found", "city not found", nil)
	}

	recorder := performRequest("/weather?city=NoSuchCityXYZ", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "weather_failed", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "city not found")
}

func TestRouter_ForecastUpstreamFailure(t *testing.T) {
	stub := newStubServices()
	stub.weather.forecastFn = func(ctx context.Context, city string, units weather.UnitSystem) (weather.ForecastReport, error) {
		return weather.ForecastReport{}, apperrors.Wrap("upstream_error", "forecast unavailable", nil)
	}

	recorder := performRequest("/forecast?city=Paris", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "forecast_failed", errBody["error"]["code"])
}

func TestRouter_HourlyDefaultsAndValidates(t *testing.T) {
	stub := newStubServices()
	var gotHours int
	stub.weather.hourlyFn = func(ctx context.Context, city string, units weather.UnitSystem, hours int) (weather.HourlyReport, error) {
		gotHours = hours
		return weather.HourlyReport{City: city, Timeline: []weather.HourlyPoint{}}, nil
	}
	router := newRouterUnderTest(t, stub)

	recorder := performRequest("/hourly?city=Berlin", router)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 12, gotHours)

	recorder = performRequest("/hourly?city=Berlin&hours=24", router)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 24, gotHours)

	recorder = performRequest("/hourly?city=Berlin&hours=soon", router)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_UV(t *testing.T) {
	stub := newStubServices()
	stub.weather.uvFn = func(ctx context.Context, city string, units weather.UnitSystem) (weather.UVReport, error) {
		return weather.UVReport{City: "Cairo", UVIndex: 9.3, UVCategory: "Very High"}, nil
	}

	recorder := performRequest("/uv?city=Cairo", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got weather.UVReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Very High", got.UVCategory)
}

func TestRouter_Alerts(t *testing.T) {
	stub := newStubServices()
	stub.weather.alertsFn = func(ctx context.Context, city string, units weather.UnitSystem) (weather.AlertReport, error) {
		return weather.AlertReport{City: "Lisbon", Alerts: []weather.Alert{}}, nil
	}

	recorder := performRequest("/alerts?city=Lisbon", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"city":"Lisbon","alerts":[]}`, recorder.Body.String())
}

func TestRouter_Outfit(t *testing.T) {
	stub := newStubServices()
	stub.outfit.recommendFn = func(ctx context.Context, city string, units weather.UnitSystem) (outfit.Recommendation, error) {
		require.Equal(t, "paris", city)
		return outfit.Recommendation{City: "paris", Summary: "In paris, it's 22.0°C with clear sky."}, nil
	}

	recorder := performRequest("/outfit?city=paris", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got outfit.Recommendation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "paris", got.City)
}

func TestRouter_Compare(t *testing.T) {
	stub := newStubServices()
	stub.compare.compareFn = func(ctx context.Context, cities string, units weather.UnitSystem) ([]compare.Row, error) {
		require.Equal(t, "Paris,Tokyo", cities)
		return []compare.Row{{City: "Paris"}, {City: "Tokyo"}}, nil
	}

	recorder := performRequest("/compare?cities=Paris,Tokyo", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got struct {
		Cities []compare.Row `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Cities, 2)
	require.Equal(t, "Paris", got.Cities[0].City)
}

func TestRouter_CompareMissingCities(t *testing.T) {
	recorder := performRequest("/compare", newRouterUnderTest(t, newStubServices()))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_ReverseGeocode(t *testing.T) {
	stub := newStubServices()
	stub.weather.reverseFn = func(ctx context.Context, lat, lon float64) string {
		require.Equal(t, 48.85, lat)
		require.Equal(t, 2.35, lon)
		return "Paris"
	}
	router := newRouterUnderTest(t, stub)

	recorder := performRequest("/reverse_geocode?lat=48.85&lon=2.35", router)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"city":"Paris"}`, recorder.Body.String())

	recorder = performRequest("/reverse_geocode?lat=north&lon=2.35", router)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_ReverseGeocodeUnknownIsStill200(t *testing.T) {
	stub := newStubServices()
	stub.weather.reverseFn = func(ctx context.Context, lat, lon float64) string {
		return "Unknown"
	}

	recorder := performRequest("/reverse_geocode?lat=0&lon=0", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"city":"Unknown"}`, recorder.Body.String())
}

func performRequest(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, stub *stubServices) *http.Server {
	t.Helper()
	handler := NewHandler(stub.weather, stub.outfit, stub.compare, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubServices struct {
	weather *stubWeatherService
	outfit  *stubOutfitService
	compare *stubCompareService
}

func newStubServices() *stubServices {
	return &stubServices{
		weather: &stubWeatherService{},
		outfit:  &stubOutfitService{},
		compare: &stubCompareService{},
	}
}

type stubWeatherService struct {
	currentFn  func(ctx context.Context, city string, units weather.UnitSystem) (weather.CurrentWeather, error)
	forecastFn func(ctx context.Context, city string, units weather.UnitSystem) (weather.ForecastReport, error)
	hourlyFn   func(ctx context.Context, city string, units weather.UnitSystem, hours int) (weather.HourlyReport, error)
	coordsFn   func(ctx context.Context, city string) (weather.Coordinates, error)
	uvFn       func(ctx context.Context, city string, units weather.UnitSystem) (weather.UVReport, error)
	airFn      func(ctx context.Context, city string) (weather.AirQuality, error)
	alertsFn   func(ctx context.Context, city string, units weather.UnitSystem) (weather.AlertReport, error)
	reverseFn  func(ctx context.Context, lat, lon float64) string
}

func (s *stubWeatherService) Current(ctx context.Context, city string, units weather.UnitSystem) (weather.CurrentWeather, error) {
	if s.currentFn != nil {
		return s.currentFn(ctx, city, units)
	}
	return weather.CurrentWeather{}, nil
}

func (s *stubWeatherService) Forecast(ctx context.Context, city string, units weather.UnitSystem) (weather.ForecastReport, error) {
	if s.forecastFn != nil {
		return s.forecastFn(ctx, city, units)
	}
	return weather.ForecastReport{}, nil
}

func (s *stubWeatherService) Hourly(ctx context.Context, city string, units weather.UnitSystem, hours int) (weather.HourlyReport, error) {
	if s.hourlyFn != nil {
		return s.hourlyFn(ctx, city, units, hours)
	}
	return weather.HourlyReport{}, nil
}

func (s *stubWeatherService) Coords(ctx context.Context, city string) (weather.Coordinates, error) {
	if s.coordsFn != nil {
		return s.coordsFn(ctx, city)
	}
	return weather.Coordinates{}, nil
}

func (s *stubWeatherService) UV(ctx context.Context, city string, units weather.UnitSystem) (weather.UVReport, error) {
	if s.uvFn != nil {
		return s.uvFn(ctx, city, units)
	}
	return weather.UVReport{}, nil
}

func (s *stubWeatherService) AirQuality(ctx context.Context, city string) (weather.AirQuality, error) {
	if s.airFn != nil {
		return s.airFn(ctx, city)
	}
	return weather.AirQuality{}, nil
}

func (s *stubWeatherService) Alerts(ctx context.Context, city string, units weather.UnitSystem) (weather.AlertReport, error) {
	if s.alertsFn != nil {
		return s.alertsFn(ctx, city, units)
	}
	return weather.AlertReport{}, nil
}

func (s *stubWeatherService) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	if s.reverseFn != nil {
		return s.reverseFn(ctx, lat, lon)
	}
	return "Unknown"
}

type stubOutfitService struct {
	recommendFn func(ctx context.Context, city string, units weather.UnitSystem) (outfit.Recommendation, error)
}

func (s *stubOutfitService) Recommend(ctx context.Context, city string, units weather.UnitSystem) (outfit.Recommendation, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, city, units)
	}
	return outfit.Recommendation{}, nil
}

type stubCompareService struct {
	compareFn func(ctx context.Context, cities string, units weather.UnitSystem) ([]compare.Row, error)
}

func (s *stubCompareService) Compare(ctx context.Context, cities string, units weather.UnitSystem) ([]compare.Row, error) {
	if s.compareFn != nil {
		return s.compareFn(ctx, cities, units)
	}
	return nil, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
