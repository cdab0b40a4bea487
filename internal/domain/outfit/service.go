// Package outfit derives clothing recommendations by composing the
// weather domain's lookups directly, so one request never proxies
// through another HTTP endpoint.
package outfit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rithika-paii/weather-api/internal/domain/weather"
)

// Service exposes the outfit recommendation engine.
type Service interface {
	Recommend(ctx context.Context, city string, units weather.UnitSystem) (Recommendation, error)
}

type service struct {
	weatherSvc weather.Service
	logger     *slog.Logger
}

// NewService wires up the outfit domain.
func NewService(weatherSvc weather.Service, logger *slog.Logger) Service {
	return &service{
		weatherSvc: weatherSvc,
		logger:     logger.With("component", "outfit.service"),
	}
}

// Recommend runs the rule set over current conditions and the UV report.
// Either lookup failing fails the whole recommendation with that error;
// there is no partial result.
func (s *service) Recommend(ctx context.Context, city string, units weather.UnitSystem) (Recommendation, error) {
	current, err := s.weatherSvc.Current(ctx, city, units)
	if err != nil {
		return Recommendation{}, err
	}
	uv, err := s.weatherSvc.UV(ctx, city, units)
	if err != nil {
		return Recommendation{}, err
	}

	rain := orZero(current.Rain1h) + orZero(current.Rain3h)
	snow := orZero(current.Snow1h) + orZero(current.Snow3h)

	tempC := current.Temperature
	if units == weather.UnitImperial {
		tempC = (current.Temperature - 32) * 5 / 9
	}

	clothing := make([]string, 0, 2)
	accessories := make([]string, 0, 2)
	notes := make([]string, 0, 3)

	switch {
	case tempC <= 0:
		clothing = append(clothing, "Heavy winter coat")
		accessories = append(accessories, "Gloves, scarf, warm hat")
		notes = append(notes, "Very cold weather.")
	case tempC <= 10:
		clothing = append(clothing, "Coat or thick jacket")
		notes = append(notes, "Cool temperatures.")
	case tempC <= 20:
		clothing = append(clothing, "Light jacket or sweater")
	default:
		clothing = append(clothing, "Light clothing")
		notes = append(notes, "Warm temperatures.")
	}

	if rain > 0 {
		accessories = append(accessories, "Umbrella")
		notes = append(notes, "Rain expected.")
	}
	if snow > 0 {
		clothing = append(clothing, "Snow boots")
		notes = append(notes, "Snowy conditions.")
	}

	switch uv.UVCategory {
	case "High", "Very High", "Extreme":
		accessories = append(accessories, "Sunscreen")
		notes = append(notes, fmt.Sprintf("UV levels are %s.", strings.ToLower(uv.UVCategory)))
	}

	symbol := "C"
	if units == weather.UnitImperial {
		symbol = "F"
	}
	summary := fmt.Sprintf("In %s, it's %.1f°%s with %s.", city, current.Temperature, symbol, current.Condition)

	return Recommendation{
		City:        city,
		Temperature: current.Temperature,
		Condition:   current.Condition,
		PrecipMM:    weather.Round2(rain + snow),
		UVCategory:  uv.UVCategory,
		Summary:     summary,
		Clothing:    clothing,
		Accessories: accessories,
		Notes:       notes,
	}, nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
