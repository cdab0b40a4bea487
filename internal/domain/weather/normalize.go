package weather

import "math"

// maxHorizonHours matches the provider's 5-day/3-hour forecast coverage.
const maxHorizonHours = 120

// maxForecastDays caps the daily aggregation output.
const maxForecastDays = 5

// AggregateDaily folds an ordered sequence of 3-hour buckets into per-day
// summaries keyed by calendar date. The first bucket seen for a date seeds
// humidity, condition and icon; later buckets only widen the temperature
// range and accumulate precipitation. The first five distinct dates are
// kept, in encounter order.
func AggregateDaily(entries []ForecastEntry) []DailySummary {
	var order []string
	byDate := make(map[string]*DailySummary)

	for _, entry := range entries {
		date := entry.Date()
		precip := entry.Rain3h + entry.Snow3h

		day, ok := byDate[date]
		if !ok {
			byDate[date] = &DailySummary{
				Date:      date,
				MinTemp:   entry.Temp,
				MaxTemp:   entry.Temp,
				Humidity:  entry.Humidity,
				Condition: entry.Condition,
				Icon:      entry.Icon,
				PrecipMM:  precip,
			}
			order = append(order, date)
			continue
		}

		day.MinTemp = math.Min(day.MinTemp, entry.Temp)
		day.MaxTemp = math.Max(day.MaxTemp, entry.Temp)
		day.PrecipMM += precip
	}

	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	out := make([]DailySummary, 0, len(order))
	for _, date := range order {
		day := *byDate[date]
		day.PrecipMM = Round2(day.PrecipMM)
		out = append(out, day)
	}
	return out
}

// SliceHourly truncates the bucket sequence to ceil(hours/3) entries,
// mapping each verbatim. The horizon is clamped to [1, 120] hours so a
// zero or negative request still yields at least one bucket.
func SliceHourly(entries []ForecastEntry, hours int) []HourlyPoint {
	if hours < 1 {
		hours = 1
	}
	if hours > maxHorizonHours {
		hours = maxHorizonHours
	}

	needed := (hours + 2) / 3
	if needed > len(entries) {
		needed = len(entries)
	}

	timeline := make([]HourlyPoint, 0, needed)
	for _, entry := range entries[:needed] {
		timeline = append(timeline, HourlyPoint{
			Time:        entry.Timestamp,
			Temperature: entry.Temp,
			FeelsLike:   entry.FeelsLike,
			Humidity:    entry.Humidity,
			Condition:   entry.Condition,
			Icon:        entry.Icon,
		})
	}
	return timeline
}

// UVCategory maps a UV index onto the WHO exposure bands. Total on [0, inf).
func UVCategory(uv float64) string {
	switch {
	case uv < 3:
		return "Low"
	case uv < 6:
		return "Moderate"
	case uv < 8:
		return "High"
	case uv < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

var aqiCategories = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

// AQICategory maps the provider's 1..5 air quality index onto its label.
// Anything outside the table reads "Unknown".
func AQICategory(aqi int) string {
	if category, ok := aqiCategories[aqi]; ok {
		return category
	}
	return "Unknown"
}

// NormalizeAlerts applies per-field defaults to raw alert entries. A nil
// or empty input yields an empty, non-nil slice.
func NormalizeAlerts(raw []Alert) []Alert {
	out := make([]Alert, 0, len(raw))
	for _, alert := range raw {
		if alert.Event == "" {
			alert.Event = "No title"
		}
		out = append(out, alert)
	}
	return out
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
