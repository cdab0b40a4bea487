package main

import (
	"github.com/rithika-paii/weather-api/internal/infra/config"
	"github.com/rithika-paii/weather-api/internal/infra/weather/openweather"
)

func provideOpenWeatherConfig(cfg *config.Config) openweather.Config {
	return openweather.Config{
		APIKey:         cfg.Upstream.APIKey,
		GeoBaseURL:     cfg.Upstream.GeoBaseURL,
		WeatherBaseURL: cfg.Upstream.WeatherBaseURL,
		OneCallURL:     cfg.Upstream.OneCallURL,
		AirQualityURL:  cfg.Upstream.AirQualityURL,
		Timeout:        cfg.Upstream.Timeout,
	}
}
