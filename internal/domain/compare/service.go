// Package compare assembles side-by-side weather rows for a list of
// cities, dropping any city whose lookups fail.
package compare

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rithika-paii/weather-api/internal/domain/weather"
)

// lookupConcurrency bounds the upstream fan-out per comparison request.
const lookupConcurrency = 4

// Row is one surviving city in the comparison result.
type Row struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	AQI         int     `json:"aqi"`
	AQICategory string  `json:"aqi_category"`
}

// Service exposes the multi-city comparison aggregator.
type Service interface {
	Compare(ctx context.Context, cities string, units weather.UnitSystem) ([]Row, error)
}

type service struct {
	weatherSvc weather.Service
	logger     *slog.Logger
}

// NewService wires up the comparison domain.
func NewService(weatherSvc weather.Service, logger *slog.Logger) Service {
	return &service{
		weatherSvc: weatherSvc,
		logger:     logger.With("component", "compare.service"),
	}
}

// cityResult keeps the per-city outcome explicit so discarding failures
// is a visible filtering step, not an implicit catch-all.
type cityResult struct {
	row Row
	err error
}

// Compare looks up every city concurrently and keeps only the rows whose
// lookups all succeeded, in input order. A failing city never aborts or
// delays the others; goroutines record the error and return nil so
// siblings keep running.
func (s *service) Compare(ctx context.Context, cities string, units weather.UnitSystem) ([]Row, error) {
	names := splitCities(cities)
	results := make([]cityResult, len(names))

	var g errgroup.Group
	g.SetLimit(lookupConcurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = s.lookupCity(ctx, name, units)
			return nil
		})
	}
	_ = g.Wait()

	rows := make([]Row, 0, len(names))
	for i, result := range results {
		if result.err != nil {
			s.logger.Debug("city dropped from comparison", "city", names[i], "error", result.err)
			continue
		}
		rows = append(rows, result.row)
	}
	return rows, nil
}

func (s *service) lookupCity(ctx context.Context, name string, units weather.UnitSystem) cityResult {
	current, err := s.weatherSvc.Current(ctx, name, units)
	if err != nil {
		return cityResult{err: err}
	}
	air, err := s.weatherSvc.AirQuality(ctx, name)
	if err != nil {
		return cityResult{err: err}
	}

	return cityResult{row: Row{
		City:        current.City,
		Temperature: current.Temperature,
		Condition:   current.Condition,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
		AQI:         air.AQI,
		AQICategory: air.Category,
	}}
}

func splitCities(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			names = append(names, clean)
		}
	}
	return names
}
