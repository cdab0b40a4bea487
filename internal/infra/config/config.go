package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// UpstreamConfig holds credentials and endpoints for the weather provider.
//
// APIKey is intentionally not validated at startup: the provider rejects
// unauthenticated calls itself, and the service stays bootable without it.
type UpstreamConfig struct {
	APIKey         string        `yaml:"apiKey"`
	GeoBaseURL     string        `yaml:"geoBaseUrl"`
	WeatherBaseURL string        `yaml:"weatherBaseUrl"`
	OneCallURL     string        `yaml:"oneCallUrl"`
	AirQualityURL  string        `yaml:"airQualityUrl"`
	Timeout        time.Duration `yaml:"timeout"`
}

// Load reads configuration from an optional .env file, a YAML file and
// environment variables, in that order of precedence (env wins).
func Load() (*Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Upstream.APIKey = v
	}
	if v := os.Getenv("WEATHER_GEO_BASE_URL"); v != "" {
		cfg.Upstream.GeoBaseURL = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Upstream.WeatherBaseURL = v
	}
	if v := os.Getenv("WEATHER_ONECALL_URL"); v != "" {
		cfg.Upstream.OneCallURL = v
	}
	if v := os.Getenv("WEATHER_AIR_QUALITY_URL"); v != "" {
		cfg.Upstream.AirQualityURL = v
	}
	if v := os.Getenv("WEATHER_UPSTREAM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Upstream.Timeout = parsed
		}
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Upstream: UpstreamConfig{
			GeoBaseURL:     "http://api.openweathermap.org/geo/1.0",
			WeatherBaseURL: "https://api.openweathermap.org/data/2.5",
			OneCallURL:     "https://api.openweathermap.org/data/2.5/onecall",
			AirQualityURL:  "http://api.openweathermap.org/data/2.5/air_pollution",
			Timeout:        10 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Upstream.GeoBaseURL == "" {
		return errors.New("upstream.geoBaseUrl cannot be empty")
	}
	if c.Upstream.WeatherBaseURL == "" {
		return errors.New("upstream.weatherBaseUrl cannot be empty")
	}
	if c.Upstream.OneCallURL == "" {
		return errors.New("upstream.oneCallUrl cannot be empty")
	}
	if c.Upstream.AirQualityURL == "" {
		return errors.New("upstream.airQualityUrl cannot be empty")
	}
	if c.Upstream.Timeout <= 0 {
		return errors.New("upstream.timeout must be positive")
	}
	return nil
}
