package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/continuity"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/review"
)

// Config holds all configuration values
type Config struct {
	Port      string `mapstructure:"PORT"`
	DBPath    string `mapstructure:"DB_PATH"`
	JWTSecret string `mapstructure:"JWT_SECRET"` // Empty disables bearer auth
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`

	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	RateLimitBurst     int `mapstructure:"RATE_LIMIT_BURST"`

	// Continuity tuning
	GapMinConfidence      int     `mapstructure:"GAP_MIN_CONFIDENCE"`
	GapOvernightMinHours  float64 `mapstructure:"GAP_OVERNIGHT_MIN_HOURS"`
	GapLongHours          float64 `mapstructure:"GAP_LONG_HOURS"`
	TransferBufferMinutes int     `mapstructure:"TRANSFER_BUFFER_MINUTES"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", ":8080")
	v.SetDefault("DB_PATH", "./data/itineraries.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("GAP_MIN_CONFIDENCE", continuity.DefaultMinConfidence)
	v.SetDefault("GAP_OVERNIGHT_MIN_HOURS", continuity.DefaultOvernightMinGap.Hours())
	v.SetDefault("GAP_LONG_HOURS", continuity.DefaultLongGap.Hours())
	v.SetDefault("TRANSFER_BUFFER_MINUTES", int(review.DefaultTransferBuffer/time.Minute))
}

// Load reads config.yaml from the working directory or ./config when present,
// then lets environment variables override every key
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engines cannot work with
func (c *Config) Validate() error {
	if c.GapMinConfidence < 1 || c.GapMinConfidence > 100 {
		return fmt.Errorf("GAP_MIN_CONFIDENCE must be within 1..100, got %d", c.GapMinConfidence)
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	if c.GapOvernightMinHours < 0 || c.GapLongHours < 0 || c.TransferBufferMinutes < 0 {
		return fmt.Errorf("gap thresholds must not be negative")
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ContinuityOptions converts the gap settings for continuity.NewValidator
func (c *Config) ContinuityOptions() continuity.Options {
	return continuity.Options{
		MinConfidence:   c.GapMinConfidence,
		OvernightMinGap: hours(c.GapOvernightMinHours),
		LongGap:         hours(c.GapLongHours),
	}
}

// ReviewOptions converts the review settings for review.New
func (c *Config) ReviewOptions() review.Options {
	return review.Options{TransferBuffer: time.Duration(c.TransferBufferMinutes) * time.Minute}
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
