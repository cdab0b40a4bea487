//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/rithika-paii/weather-api/internal/bootstrap"
	"github.com/rithika-paii/weather-api/internal/domain/compare"
	"github.com/rithika-paii/weather-api/internal/domain/outfit"
	"github.com/rithika-paii/weather-api/internal/domain/weather"
	"github.com/rithika-paii/weather-api/internal/infra/config"
	"github.com/rithika-paii/weather-api/internal/infra/weather/openweather"
	httpiface "github.com/rithika-paii/weather-api/internal/interface/http"
	"github.com/rithika-paii/weather-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideOpenWeatherConfig,
		openweather.NewClient,
		wire.Bind(new(weather.Provider), new(*openweather.Client)),
		weather.NewService,
		outfit.NewService,
		compare.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
