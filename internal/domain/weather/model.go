package weather

import (
	"fmt"
	"strings"
)

// UnitSystem selects the measurement system used for upstream calls.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// NormalizeUnits coerces any unrecognized value to metric. Callers never
// see a unit validation error.
func NormalizeUnits(raw string) UnitSystem {
	switch UnitSystem(strings.TrimSpace(raw)) {
	case UnitMetric:
		return UnitMetric
	case UnitImperial:
		return UnitImperial
	default:
		return UnitMetric
	}
}

// Place is a single geocoding match from the upstream provider.
type Place struct {
	Name    string
	State   string
	Country string
	Lat     float64
	Lon     float64
}

// CurrentWeather is the reduced current-conditions payload served to
// callers. Precipitation pointers stay nil when the provider omits the
// matching field; nil means "no value", not zero.
type CurrentWeather struct {
	City        string   `json:"city"`
	Temperature float64  `json:"temperature"`
	FeelsLike   float64  `json:"feels_like"`
	TempMin     float64  `json:"temp_min"`
	TempMax     float64  `json:"temp_max"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"wind_speed"`
	Sunrise     int64    `json:"sunrise"`
	Sunset      int64    `json:"sunset"`
	Condition   string   `json:"condition"`
	Icon        string   `json:"icon"`
	Rain1h      *float64 `json:"rain_1h"`
	Rain3h      *float64 `json:"rain_3h"`
	Snow1h      *float64 `json:"snow_1h"`
	Snow3h      *float64 `json:"snow_3h"`
}

// ForecastEntry is one 3-hour bucket from the upstream forecast feed.
// Timestamp keeps the provider's "YYYY-MM-DD HH:MM:SS" text verbatim.
type ForecastEntry struct {
	Timestamp string
	Temp      float64
	FeelsLike float64
	Humidity  int
	Condition string
	Icon      string
	Rain3h    float64
	Snow3h    float64
}

// Date returns the calendar-date portion of the bucket timestamp.
func (e ForecastEntry) Date() string {
	if idx := strings.IndexByte(e.Timestamp, ' '); idx > 0 {
		return e.Timestamp[:idx]
	}
	return e.Timestamp
}

// DailySummary aggregates the 3-hour buckets of one calendar date.
type DailySummary struct {
	Date      string  `json:"date"`
	MinTemp   float64 `json:"min_temp"`
	MaxTemp   float64 `json:"max_temp"`
	Humidity  int     `json:"humidity"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	PrecipMM  float64 `json:"precip_mm"`
}

// ForecastReport is the /forecast response body.
type ForecastReport struct {
	City  string         `json:"city"`
	Daily []DailySummary `json:"daily"`
}

// HourlyPoint is one timeline entry of the /hourly response.
type HourlyPoint struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

// HourlyReport is the /hourly response body.
type HourlyReport struct {
	City     string        `json:"city"`
	Timeline []HourlyPoint `json:"timeline"`
}

// Coordinates is the /coords response body.
type Coordinates struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// UVReport carries the UV index and its category for a city.
type UVReport struct {
	City       string  `json:"city"`
	UVIndex    float64 `json:"uv_index"`
	UVCategory string  `json:"uv_category"`
}

// AirQuality carries the air quality index and its category for a city.
type AirQuality struct {
	City     string `json:"city"`
	AQI      int    `json:"aqi"`
	Category string `json:"category"`
}

// Alert is one normalized weather alert.
type Alert struct {
	Event       string `json:"event"`
	Description string `json:"description"`
	SenderName  string `json:"sender_name"`
}

// AlertReport is the /alerts response body. Alerts is always non-nil.
type AlertReport struct {
	City   string  `json:"city"`
	Alerts []Alert `json:"alerts"`
}

// OneCallData is the subset of the provider's one-call payload this
// service reads. The zero value doubles as the empty-result sentinel the
// provider client returns on a non-success status.
type OneCallData struct {
	UVIndex *float64
	Alerts  []Alert
}

// AirSample is one entry of the provider's air pollution list.
type AirSample struct {
	AQI int
}

// UpstreamStatusError reports a non-success HTTP status from the provider.
// Call sites decide whether that means "not found", a hard failure or a
// defaulted value; the policy is deliberately not unified here.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}
