package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"CropCast/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Forecast struct {
		Seed           int64 `yaml:"seed"`
		HistoryDays    int   `yaml:"history_days"`
		MaxHorizonDays int   `yaml:"max_horizon_days"`
		Trees          int   `yaml:"trees"`
		Workers        int   `yaml:"workers"`
		QueueSize      int   `yaml:"queue_size"`
	} `yaml:"forecast"`
	Analysis struct {
		WindowDays   int `yaml:"window_days"`
		TrailingDays int `yaml:"trailing_days"`
	} `yaml:"analysis"`
	Weather struct {
		// APIKey is accepted for forward compatibility with a real forecast
		// provider; the current provider is a static placeholder.
		APIKey        string  `yaml:"api_key"`
		Temperature   float64 `yaml:"temperature"`
		Humidity      float64 `yaml:"humidity"`
		Precipitation float64 `yaml:"precipitation"`
		WindSpeed     float64 `yaml:"wind_speed"`
	} `yaml:"weather"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		c.Weather.APIKey = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Forecast.Seed == 0 {
		c.Forecast.Seed = 42
	}
	if c.Forecast.HistoryDays == 0 {
		c.Forecast.HistoryDays = 365
	}
	if c.Forecast.MaxHorizonDays == 0 {
		c.Forecast.MaxHorizonDays = 90
	}
	if c.Forecast.Trees == 0 {
		c.Forecast.Trees = 100
	}
	if c.Forecast.Workers == 0 {
		c.Forecast.Workers = 4
	}
	if c.Forecast.QueueSize == 0 {
		c.Forecast.QueueSize = 64
	}
	if c.Analysis.WindowDays == 0 {
		c.Analysis.WindowDays = 90
	}
	if c.Analysis.TrailingDays == 0 {
		c.Analysis.TrailingDays = 30
	}
	if c.Weather.Temperature == 0 {
		c.Weather.Temperature = 22.5
	}
	if c.Weather.Humidity == 0 {
		c.Weather.Humidity = 65.0
	}
	if c.Weather.Precipitation == 0 {
		c.Weather.Precipitation = 0.5
	}
	if c.Weather.WindSpeed == 0 {
		c.Weather.WindSpeed = 7.2
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Forecast.HistoryDays < 30 {
		return fmt.Errorf("forecast.history_days must be >= 30, got %d", c.Forecast.HistoryDays)
	}
	if c.Forecast.MaxHorizonDays < 1 || c.Forecast.MaxHorizonDays > 365 {
		return fmt.Errorf("forecast.max_horizon_days must be in [1, 365], got %d", c.Forecast.MaxHorizonDays)
	}
	if c.Forecast.Trees < 1 {
		return fmt.Errorf("forecast.trees must be >= 1, got %d", c.Forecast.Trees)
	}
	if c.Analysis.TrailingDays > c.Analysis.WindowDays {
		return fmt.Errorf("analysis.trailing_days cannot exceed analysis.window_days")
	}
	return nil
}
