package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Roadmap  RoadmapConfig  `yaml:"roadmap"`
	Sessions SessionsConfig `yaml:"sessions"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int `yaml:"port"`
	MetricsPort        int `yaml:"metrics_port"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

// HermesConfig points at the NATS server that receives dashboard events.
// An empty URL runs without events.
type HermesConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	Weights          ScoringWeights `yaml:"weights"`
	ZeroWeightPolicy string         `yaml:"zero_weight_policy"`
}

// ScoringWeights are the initial slider positions for new sessions.
type ScoringWeights struct {
	Impact        float64 `yaml:"impact"`
	Cost          float64 `yaml:"cost"`
	Feasibility   float64 `yaml:"feasibility"`
	TimeToBenefit float64 `yaml:"time_to_benefit"`
}

// RoadmapConfig sets the default roadmap start date (YYYY-MM-DD). Empty means today.
type RoadmapConfig struct {
	Anchor string `yaml:"anchor"`
}

type SessionsConfig struct {
	TTLMinutes           int `yaml:"ttl_minutes"`
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Sessions.TTLMinutes) * time.Minute
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Sessions.SweepIntervalSeconds) * time.Second
}

// DefaultAnchor returns the configured roadmap anchor, or now when unset.
func (c *Config) DefaultAnchor(now time.Time) (time.Time, error) {
	if c.Roadmap.Anchor == "" {
		return now, nil
	}
	t, err := time.Parse("2006-01-02", c.Roadmap.Anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse roadmap anchor: %w", err)
	}
	return t, nil
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 240,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Impact:        0.40,
				Cost:          0.20,
				Feasibility:   0.20,
				TimeToBenefit: 0.20,
			},
			ZeroWeightPolicy: "equal",
		},
		Sessions: SessionsConfig{
			TTLMinutes:           120,
			SweepIntervalSeconds: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if _, err := cfg.DefaultAnchor(time.Now()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PRIORITIZATION_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PRIORITIZATION_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PRIORITIZATION_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("PRIORITIZATION_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("PRIORITIZATION_ZERO_WEIGHT_POLICY"); v != "" {
		cfg.Scoring.ZeroWeightPolicy = v
	}
	if v := os.Getenv("PRIORITIZATION_ROADMAP_ANCHOR"); v != "" {
		cfg.Roadmap.Anchor = v
	}
	if v := os.Getenv("PRIORITIZATION_SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sessions.TTLMinutes = n
		}
	}
	if v := os.Getenv("PRIORITIZATION_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PRIORITIZATION_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
