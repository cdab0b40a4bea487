package weather

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/rithika-paii/weather-api/pkg/errors"
)

// Service exposes the per-feature weather lookups.
type Service interface {
	Current(ctx context.Context, city string, units UnitSystem) (CurrentWeather, error)
	Forecast(ctx context.Context, city string, units UnitSystem) (ForecastReport, error)
	Hourly(ctx context.Context, city string, units UnitSystem, hours int) (HourlyReport, error)
	Coords(ctx context.Context, city string) (Coordinates, error)
	UV(ctx context.Context, city string, units UnitSystem) (UVReport, error)
	AirQuality(ctx context.Context, city string) (AirQuality, error)
	Alerts(ctx context.Context, city string, units UnitSystem) (AlertReport, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

// Provider abstracts the upstream weather data source.
type Provider interface {
	Geocode(ctx context.Context, city string) ([]Place, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]Place, error)
	Current(ctx context.Context, city string, units UnitSystem) (CurrentWeather, error)
	Forecast(ctx context.Context, lat, lon float64, units UnitSystem) ([]ForecastEntry, error)
	OneCall(ctx context.Context, lat, lon float64, units UnitSystem, exclude string) (OneCallData, error)
	AirPollution(ctx context.Context, lat, lon float64) ([]AirSample, error)
}

type service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService wires up the weather domain.
func NewService(provider Provider, logger *slog.Logger) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "weather.service"),
	}
}

// locate resolves a free-text city name to its first geocoding match.
// One upstream call, no caching, no disambiguation.
func (s *service) locate(ctx context.Context, city string) (Place, error) {
	places, err := s.provider.Geocode(ctx, city)
	if err != nil {
		return Place{}, apperrors.Wrap("upstream_error", "geocoding failed", err)
	}
	if len(places) == 0 {
		return Place{}, apperrors.Wrap("not_found", "city not found", nil)
	}
	return places[0], nil
}

func (s *service) Current(ctx context.Context, city string, units UnitSystem) (CurrentWeather, error) {
	current, err := s.provider.Current(ctx, city, units)
	if err != nil {
		var statusErr *UpstreamStatusError
		if errors.As(err, &statusErr) {
			return CurrentWeather{}, apperrors.Wrap("not_found", "city not found", err)
		}
		return CurrentWeather{}, apperrors.Wrap("upstream_error", "weather lookup failed", err)
	}
	return current, nil
}

func (s *service) Forecast(ctx context.Context, city string, units UnitSystem) (ForecastReport, error) {
	place, err := s.locate(ctx, city)
	if err != nil {
		return ForecastReport{}, err
	}

	entries, err := s.provider.Forecast(ctx, place.Lat, place.Lon, units)
	if err != nil {
		return ForecastReport{}, apperrors.Wrap("upstream_error", "forecast unavailable", err)
	}

	return ForecastReport{City: place.Name, Daily: AggregateDaily(entries)}, nil
}

func (s *service) Hourly(ctx context.Context, city string, units UnitSystem, hours int) (HourlyReport, error) {
	place, err := s.locate(ctx, city)
	if err != nil {
		return HourlyReport{}, err
	}

	entries, err := s.provider.Forecast(ctx, place.Lat, place.Lon, units)
	if err != nil {
		return HourlyReport{}, apperrors.Wrap("upstream_error", "forecast unavailable", err)
	}

	return HourlyReport{City: place.Name, Timeline: SliceHourly(entries, hours)}, nil
}

func (s *service) Coords(ctx context.Context, city string) (Coordinates, error) {
	place, err := s.locate(ctx, city)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{City: place.Name, Country: place.Country, Lat: place.Lat, Lon: place.Lon}, nil
}

// UV reads the one-call feed with a soft fallback: a missing payload or a
// missing uvi field both default the index to 0, never an error.
func (s *service) UV(ctx context.Context, city string, units UnitSystem) (UVReport, error) {
	place, err := s.locate(ctx, city)
	if err != nil {
		return UVReport{}, err
	}

	data, err := s.provider.OneCall(ctx, place.Lat, place.Lon, units, "hourly,daily,minutely")
	if err != nil {
		return UVReport{}, apperrors.Wrap("upstream_error", "uv lookup failed", err)
	}

	uvi := 0.0
	if data.UVIndex != nil {
		uvi = *data.UVIndex
	}
	return UVReport{City: place.Name, UVIndex: uvi, UVCategory: UVCategory(uvi)}, nil
}

// AirQuality hard-fails when the provider returns no samples. Unlike UV
// and alerts there is no default here; the asymmetry is part of the
// endpoint contract.
func (s *service) AirQuality(ctx context.Context, city string) (AirQuality, error) {
	place, err := s.locate(ctx, city)
	if err != nil {
		return AirQuality{}, err
	}

	samples, err := s.provider.AirPollution(ctx, place.Lat, place.Lon)
	if err != nil {
		return AirQuality{}, apperrors.Wrap("upstream_error", "air quality lookup failed", err)
	}
	if len(samples) == 0 {
		return AirQuality{}, apperrors.Wrap("upstream_error", "air quality data unavailable", nil)
	}

	aqi := samples[0].AQI
	return AirQuality{City: place.Name, AQI: aqi, Category: AQICategory(aqi)}, nil
}

func (s *service) Alerts(ctx context.Context, city string, units UnitSystem) (AlertReport, error) {
	place, err := s.locate(ctx, city)
	if err != nil {
		return AlertReport{}, err
	}

	data, err := s.provider.OneCall(ctx, place.Lat, place.Lon, units, "current,minutely,hourly,daily")
	if err != nil {
		return AlertReport{}, apperrors.Wrap("upstream_error", "alerts lookup failed", err)
	}

	return AlertReport{City: place.Name, Alerts: NormalizeAlerts(data.Alerts)}, nil
}

// ReverseGeocode never fails: any upstream problem or empty result reads
// "Unknown" so the response stays structurally valid.
func (s *service) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	places, err := s.provider.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return "Unknown"
	}
	if len(places) == 0 {
		return "Unknown"
	}

	place := places[0]
	for _, candidate := range []string{place.Name, place.State, place.Country} {
		if candidate != "" {
			return candidate
		}
	}
	return "Unknown"
}
