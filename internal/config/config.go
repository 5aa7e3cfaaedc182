package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"threadboard/internal/listing"
)

type Config struct {
	HTTP      HTTP      `yaml:"http"`
	Database  Database  `yaml:"database"`
	Session   Session   `yaml:"session"`
	Listing   Listing   `yaml:"listing"`
	Log       Log       `yaml:"log"`
	RateLimit RateLimit `yaml:"rate_limit"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

type Database struct {
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite3" validate:"oneof=sqlite3 postgres"`
	DSN    string `yaml:"dsn" env:"DB_DSN" env-default:"threadboard.db" validate:"required"`
}

type Session struct {
	Key    string `yaml:"key" env:"SESSION_KEY" validate:"required,min=32"`
	Name   string `yaml:"name" env:"SESSION_NAME" env-default:"threadboard-session" validate:"required"`
	Secure bool   `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
	MaxAge int    `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"31536000" validate:"gte=0"`
}

// Listing holds the truncation limits and date layout of the thread list.
type Listing struct {
	TitleChars   int    `yaml:"title_chars" env:"LISTING_TITLE_CHARS" env-default:"60" validate:"gt=0"`
	ContentChars int    `yaml:"content_chars" env:"LISTING_CONTENT_CHARS" env-default:"700" validate:"gt=0"`
	DateFormat   string `yaml:"date_format" env:"LISTING_DATE_FORMAT" env-default:"Jan 2, 2006 at 15:04" validate:"required"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json" env:"LOG_JSON" env-default:"false"`
}

// RateLimit bounds requests per client IP. An RPS of 0 disables limiting.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"10" validate:"gte=0"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20" validate:"gte=0"`
}

// Limits returns the listing configuration in the form the preparer takes.
func (c *Config) Limits() listing.Limits {
	return listing.Limits{
		TitleChars:   c.Listing.TitleChars,
		ContentChars: c.Listing.ContentChars,
		DateFormat:   c.Listing.DateFormat,
	}
}

// Load reads configuration from the YAML file at path, or from the
// environment alone when path is empty. Variables from envFile, if it
// exists, are loaded into the environment first.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field constraint of cfg.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
