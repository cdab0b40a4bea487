package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rithika-paii/weather-api/internal/domain/compare"
	"github.com/rithika-paii/weather-api/internal/domain/outfit"
	"github.com/rithika-paii/weather-api/internal/domain/weather"
	apperrors "github.com/rithika-paii/weather-api/pkg/errors"
)

const defaultHourlyHorizon = 12

// Handler wires the HTTP transport to domain services.
type Handler struct {
	weatherSvc weather.Service
	outfitSvc  outfit.Service
	compareSvc compare.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(weatherSvc weather.Service, outfitSvc outfit.Service, compareSvc compare.Service, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		outfitSvc:  outfitSvc,
		compareSvc: compareSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// CurrentWeather handles GET /weather.
func (h *Handler) CurrentWeather(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.weatherSvc.Current(c.Request.Context(), city, unitsParam(c))
	if err != nil {
		abortDomainError(c, "weather_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Forecast handles GET /forecast.
func (h *Handler) Forecast(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.weatherSvc.Forecast(c.Request.Context(), city, unitsParam(c))
	if err != nil {
		abortDomainError(c, "forecast_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Hourly handles GET /hourly.
func (h *Handler) Hourly(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	hours := defaultHourlyHorizon
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "hours must be an integer", err))
			return
		}
		hours = parsed
	}

	resp, err := h.weatherSvc.Hourly(c.Request.Context(), city, unitsParam(c), hours)
	if err != nil {
		abortDomainError(c, "hourly_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Coords handles GET /coords.
func (h *Handler) Coords(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.weatherSvc.Coords(c.Request.Context(), city)
	if err != nil {
		abortDomainError(c, "coords_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UV handles GET /uv.
func (h *Handler) UV(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.weatherSvc.UV(c.Request.Context(), city, unitsParam(c))
	if err != nil {
		abortDomainError(c, "uv_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AirQuality handles GET /aqi.
func (h *Handler) AirQuality(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.weatherSvc.AirQuality(c.Request.Context(), city)
	if err != nil {
		abortDomainError(c, "aqi_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alerts handles GET /alerts.
func (h *Handler) Alerts(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.weatherSvc.Alerts(c.Request.Context(), city, unitsParam(c))
	if err != nil {
		abortDomainError(c, "alerts_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Outfit handles GET /outfit.
func (h *Handler) Outfit(c *gin.Context) {
	city, ok := cityParam(c)
	if !ok {
		return
	}

	resp, err := h.outfitSvc.Recommend(c.Request.Context(), city, unitsParam(c))
	if err != nil {
		abortDomainError(c, "outfit_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles GET /compare.
func (h *Handler) Compare(c *gin.Context) {
	cities := strings.TrimSpace(c.Query("cities"))
	if cities == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "cities query parameter is required", nil))
		return
	}

	rows, err := h.compareSvc.Compare(c.Request.Context(), cities, unitsParam(c))
	if err != nil {
		abortDomainError(c, "compare_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": rows})
}

// ReverseGeocode handles GET /reverse_geocode. Once the coordinates
// parse, the response is always 200.
func (h *Handler) ReverseGeocode(c *gin.Context) {
	lat, ok := floatParam(c, "lat")
	if !ok {
		return
	}
	lon, ok := floatParam(c, "lon")
	if !ok {
		return
	}

	city := h.weatherSvc.ReverseGeocode(c.Request.Context(), lat, lon)
	c.JSON(http.StatusOK, gin.H{"city": city})
}

func cityParam(c *gin.Context) (string, bool) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "city query parameter is required", nil))
		return "", false
	}
	return city, true
}

// unitsParam never rejects: anything outside metric/imperial coerces to metric.
func unitsParam(c *gin.Context) weather.UnitSystem {
	return weather.NormalizeUnits(c.Query("units"))
}

func floatParam(c *gin.Context, name string) (float64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", name+" must be a number", err))
		return 0, false
	}
	return value, true
}

func abortDomainError(c *gin.Context, code string, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsCode(err, "not_found"):
		status = http.StatusNotFound
	case apperrors.IsCode(err, "invalid_request"):
		status = http.StatusBadRequest
		code = "invalid_request"
	}
	abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
