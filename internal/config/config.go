package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Simplici0/venueprofit/internal/profitability"
)

const (
	defaultEnv      = "development"
	defaultDBPath   = "./venue.db"
	defaultPort     = "8080"
	defaultLogLevel = "info"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env           string
	DBPath        string
	Port          string
	LogLevel      string
	AdminEmail    string
	AdminPassword string
	SessionSecret string
	CostMode      profitability.Mode
	Threshold     float64
}

// Load reads .env (when present) and the environment into a Config.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:           getenvWithDefault("APP_ENV", defaultEnv),
		DBPath:        getenvWithDefault("DB_PATH", defaultDBPath),
		Port:          getenvWithDefault("PORT", defaultPort),
		LogLevel:      getenvWithDefault("LOG_LEVEL", defaultLogLevel),
		AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CostMode:      profitability.Mode(getenvWithDefault("COST_MODE", string(profitability.ModePerOccupant))),
		Threshold:     profitability.DefaultProfitThreshold,
	}

	if raw := os.Getenv("PROFIT_THRESHOLD"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("PROFIT_THRESHOLD must be numeric: %w", err)
		}
		cfg.Threshold = threshold
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings the calculator cannot honour.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("DB_PATH must not be empty")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if !c.CostMode.Valid() {
		return fmt.Errorf("COST_MODE must be %q or %q, got %q", profitability.ModePerOccupant, profitability.ModeFlatRate, c.CostMode)
	}
	if c.Threshold <= 0 || c.Threshold >= 1 {
		return fmt.Errorf("PROFIT_THRESHOLD must be between 0 and 1, got %v", c.Threshold)
	}
	if c.AuthEnabled() && c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be provided when ADMIN_EMAIL and ADMIN_PASSWORD are set")
	}
	return nil
}

// IsDev reports whether migrations should run at startup.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}

// AuthEnabled reports whether an operator account is configured.
func (c Config) AuthEnabled() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// Policy returns the calculator policy selected by configuration.
func (c Config) Policy() profitability.Policy {
	return profitability.Policy{Mode: c.CostMode, Threshold: c.Threshold}
}

func getenvWithDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
