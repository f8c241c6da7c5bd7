// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Store drivers.
const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	StoreDriver      string
	MongoURI         string
	MongoDatabase    string
	FirestoreProject string

	JWTSecret string
	TokenTTL  time.Duration

	CloudinaryURL    string
	CloudinaryFolder string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// RedisURL enables relaying live notifications between instances.
	RedisURL     string
	RedisChannel string

	CORSOrigins []string
	// RateLimitPerMinute of 0 disables rate limiting.
	RateLimitPerMinute int
}

// Load reads .env when present and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from lookup.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:               get("PORT", "8080"),
		GinMode:            get("GIN_MODE", "debug"),
		LogLevel:           get("LOG_LEVEL", "info"),
		StoreDriver:        strings.ToLower(get("STORE_DRIVER", DriverMongo)),
		MongoURI:           get("MONGODB_URI", ""),
		MongoDatabase:      get("MONGODB_DATABASE", "expohub"),
		FirestoreProject:   get("FIRESTORE_PROJECT", ""),
		JWTSecret:          get("JWT_SECRET", ""),
		CloudinaryURL:      get("CLOUDINARY_URL", ""),
		CloudinaryFolder:   get("CLOUDINARY_FOLDER", "expohub"),
		GoogleClientID:     get("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: get("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  get("GOOGLE_REDIRECT_URL", ""),
		RedisURL:           get("REDIS_URL", ""),
		RedisChannel:       get("REDIS_CHANNEL", "expohub:notifications"),
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	rate, err := strconv.Atoi(get("RATE_LIMIT_PER_MINUTE", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}
	cfg.RateLimitPerMinute = rate

	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE cannot be negative")
	}

	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI must be set for the mongo store driver")
		}
	case DriverFirestore:
		if c.FirestoreProject == "" {
			return errors.New("FIRESTORE_PROJECT must be set for the firestore store driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// Release reports whether gin runs in release mode.
func (c *Config) Release() bool {
	return c.GinMode == "release"
}

// RelayEnabled reports whether notifications are relayed through Redis.
func (c *Config) RelayEnabled() bool {
	return c.RedisURL != ""
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}
