package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Fund is one entry of the configured fund universe.
type Fund struct {
	Code  string `yaml:"code" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	SecID string `yaml:"secid" validate:"required"`
}

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Storage struct {
		Dir string `yaml:"dir" default:"./data"`
	} `yaml:"storage"`
	Morningstar struct {
		TimeseriesURL  string        `yaml:"timeseries_url" default:"https://lt.morningstar.com/api/rest.svc/timeseries_price/9vehuxllxs"`
		GraphURL       string        `yaml:"graph_url" default:"https://api.morningstar.com/v2/security/historical-price"`
		QuoteURL       string        `yaml:"quote_url" default:"https://lt.morningstar.com/api/rest.svc/9vehuxllxs/security_details"`
		Currency       string        `yaml:"currency" default:"MYR"`
		LookbackDays   int           `yaml:"lookback_days" default:"500" validate:"gt=0"`
		RequestTimeout time.Duration `yaml:"request_timeout" default:"20s"`
		RatePerSec     float64       `yaml:"rate_per_sec" default:"1"`
		Burst          float64       `yaml:"burst" default:"1"`
	} `yaml:"morningstar"`
	Refresh struct {
		OnStart  bool          `yaml:"on_start" default:"true"`
		Interval time.Duration `yaml:"interval" default:"24h"`
	} `yaml:"refresh"`
	Cache struct {
		DashboardTTL time.Duration `yaml:"dashboard_ttl" default:"15m"`
		Redis        struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Funds []Fund `yaml:"funds" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Defaults go on first: creasty/defaults cannot tell an explicit false
	// from an unset field, so the YAML must override, not the other way
	// around.
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

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

	// Override with environment variables
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Funds))
	for _, f := range c.Funds {
		if _, dup := seen[f.Code]; dup {
			return fmt.Errorf("duplicate fund code %q", f.Code)
		}
		seen[f.Code] = struct{}{}
	}
	return nil
}
