package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"evoworld/internal/domain/world"
)

// Config is the server configuration. Load order: defaults, then the YAML
// file (if any), then EVOWORLD_* environment overrides.
type Config struct {
	Listen        string          `yaml:"listen"`
	DBDSN         string          `yaml:"db_dsn"`
	MigrationsDir string          `yaml:"migrations_dir"`
	EventLogDir   string          `yaml:"event_log_dir"`
	TickSeconds   int             `yaml:"tick_seconds"`
	TicksPerDay   int             `yaml:"ticks_per_day"`
	DaysPerYear   int             `yaml:"days_per_year"`
	World         world.GenConfig `yaml:"world"`
}

func Default() Config {
	return Config{
		Listen:        ":8080",
		MigrationsDir: "migrations",
		EventLogDir:   "data/events",
		TickSeconds:   5,
		TicksPerDay:   48,
		DaysPerYear:   360,
		World:         world.DefaultGenConfig(),
	}
}

// Load reads the YAML file at path (skipped when path is empty or the
// file is missing) and applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.World.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Listen = strEnv("EVOWORLD_LISTEN", c.Listen)
	c.DBDSN = strEnv("EVOWORLD_DB_DSN", c.DBDSN)
	c.MigrationsDir = strEnv("EVOWORLD_MIGRATIONS_DIR", c.MigrationsDir)
	c.EventLogDir = strEnv("EVOWORLD_EVENT_LOG_DIR", c.EventLogDir)
	c.TickSeconds = intEnv("EVOWORLD_TICK_SECONDS", c.TickSeconds)

	c.World.Width = intEnv("EVOWORLD_WORLD_WIDTH", c.World.Width)
	c.World.Height = intEnv("EVOWORLD_WORLD_HEIGHT", c.World.Height)
	c.World.Seed = int64Env("EVOWORLD_WORLD_SEED", c.World.Seed)
	c.World.ClimateZones = intEnv("EVOWORLD_CLIMATE_ZONES", c.World.ClimateZones)
	c.World.ResourceDensity = floatEnv("EVOWORLD_RESOURCE_DENSITY", c.World.ResourceDensity)
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickSeconds) * time.Second
}

func strEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func int64Env(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
