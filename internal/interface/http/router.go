package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rithika-paii/weather-api/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/weather", handler.CurrentWeather)
	router.GET("/forecast", handler.Forecast)
	router.GET("/hourly", handler.Hourly)
	router.GET("/coords", handler.Coords)
	router.GET("/uv", handler.UV)
	router.GET("/aqi", handler.AirQuality)
	router.GET("/alerts", handler.Alerts)
	router.GET("/outfit", handler.Outfit)
	router.GET("/compare", handler.Compare)
	router.GET("/reverse_geocode", handler.ReverseGeocode)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
