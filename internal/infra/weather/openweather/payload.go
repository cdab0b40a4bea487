package openweather

import "github.com/rithika-paii/weather-api/internal/domain/weather"

// Wire shapes for the OpenWeatherMap responses. Only the fields this
// service reads are declared.

type geocodePlace struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type conditionInfo struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// precipVolume models the optional "rain"/"snow" objects. Pointer fields
// keep an absent measurement distinct from a zero one.
type precipVolume struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

type currentPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Weather []conditionInfo `json:"weather"`
	Rain    *precipVolume   `json:"rain"`
	Snow    *precipVolume   `json:"snow"`
}

type forecastItem struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []conditionInfo `json:"weather"`
	Rain    *precipVolume   `json:"rain"`
	Snow    *precipVolume   `json:"snow"`
}

type forecastPayload struct {
	List []forecastItem `json:"list"`
}

type oneCallPayload struct {
	Current *struct {
		UVI *float64 `json:"uvi"`
	} `json:"current"`
	Alerts []struct {
		Event       string `json:"event"`
		Description string `json:"description"`
		SenderName  string `json:"sender_name"`
	} `json:"alerts"`
}

type airPollutionPayload struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

func toPlaces(payload []geocodePlace) []weather.Place {
	places := make([]weather.Place, 0, len(payload))
	for _, p := range payload {
		places = append(places, weather.Place{
			Name:    p.Name,
			State:   p.State,
			Country: p.Country,
			Lat:     p.Lat,
			Lon:     p.Lon,
		})
	}
	return places
}

func toCurrentWeather(payload currentPayload) weather.CurrentWeather {
	current := weather.CurrentWeather{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		TempMin:     payload.Main.TempMin,
		TempMax:     payload.Main.TempMax,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Sunrise:     payload.Sys.Sunrise,
		Sunset:      payload.Sys.Sunset,
	}
	if len(payload.Weather) > 0 {
		current.Condition = payload.Weather[0].Description
		current.Icon = payload.Weather[0].Icon
	}
	if payload.Rain != nil {
		current.Rain1h = payload.Rain.OneHour
		current.Rain3h = payload.Rain.ThreeHour
	}
	if payload.Snow != nil {
		current.Snow1h = payload.Snow.OneHour
		current.Snow3h = payload.Snow.ThreeHour
	}
	return current
}

func toForecastEntries(items []forecastItem) []weather.ForecastEntry {
	entries := make([]weather.ForecastEntry, 0, len(items))
	for _, item := range items {
		entry := weather.ForecastEntry{
			Timestamp: item.DtTxt,
			Temp:      item.Main.Temp,
			FeelsLike: item.Main.FeelsLike,
			Humidity:  item.Main.Humidity,
			Rain3h:    threeHourVolume(item.Rain),
			Snow3h:    threeHourVolume(item.Snow),
		}
		if len(item.Weather) > 0 {
			entry.Condition = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		entries = append(entries, entry)
	}
	return entries
}

func toOneCallData(payload oneCallPayload) weather.OneCallData {
	data := weather.OneCallData{}
	if payload.Current != nil {
		data.UVIndex = payload.Current.UVI
	}
	for _, alert := range payload.Alerts {
		data.Alerts = append(data.Alerts, weather.Alert{
			Event:       alert.Event,
			Description: alert.Description,
			SenderName:  alert.SenderName,
		})
	}
	return data
}

func threeHourVolume(v *precipVolume) float64 {
	if v == nil || v.ThreeHour == nil {
		return 0
	}
	return *v.ThreeHour
}
