package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App       AppConfig
	Seats     SeatConfig
	Session   SessionConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Security  SecurityConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	CORSOrigins []string
}

type SeatConfig struct {
	Benches       int
	SeatsPerBench int
}

type SessionConfig struct {
	Store        string
	TTLMinutes   int
	SweepMinutes int
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func (c SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepMinutes) * time.Minute
}

type StoreConfig struct {
	Driver  string
	DataDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

type SecurityConfig struct {
	BcryptCost int
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "seat-booking")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SEAT_BENCHES", 10)
	v.SetDefault("SEATS_PER_BENCH", 4)
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_TTL_MINUTES", 60)
	v.SetDefault("SESSION_SWEEP_MINUTES", 5)
	v.SetDefault("STORE_DRIVER", StoreDriverFile)
	v.SetDefault("DATA_DIR", "data/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("LOGIN_BURST", 5)
	v.SetDefault("BCRYPT_COST", 10)

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Port:        v.GetString("PORT"),
			Debug:       v.GetBool("DEBUG"),
			LogPath:     v.GetString("LOG_PATH"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Seats: SeatConfig{
			Benches:       v.GetInt("SEAT_BENCHES"),
			SeatsPerBench: v.GetInt("SEATS_PER_BENCH"),
		},
		Session: SessionConfig{
			Store:        strings.ToLower(v.GetString("SESSION_STORE")),
			TTLMinutes:   v.GetInt("SESSION_TTL_MINUTES"),
			SweepMinutes: v.GetInt("SESSION_SWEEP_MINUTES"),
		},
		Store: StoreConfig{
			Driver:  strings.ToLower(v.GetString("STORE_DRIVER")),
			DataDir: v.GetString("DATA_DIR"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
			LoginBurst:     v.GetInt("LOGIN_BURST"),
		},
		Security: SecurityConfig{
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that would make the service unusable.
func (c *Config) Validate() error {
	var errs []error

	if c.Seats.Benches < 1 || c.Seats.SeatsPerBench < 1 {
		errs = append(errs, fmt.Errorf("seat layout must be at least 1x1, got %dx%d",
			c.Seats.Benches, c.Seats.SeatsPerBench))
	}
	if c.Session.TTLMinutes < 1 {
		errs = append(errs, fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.Session.TTLMinutes))
	}
	if c.Session.SweepMinutes < 1 {
		errs = append(errs, fmt.Errorf("SESSION_SWEEP_MINUTES must be positive, got %d", c.Session.SweepMinutes))
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store))
	}

	switch c.Store.Driver {
	case StoreDriverFile:
		if c.Store.DataDir == "" {
			errs = append(errs, fmt.Errorf("DATA_DIR is required for the file store"))
		}
	case StoreDriverPostgres:
		if c.Database.Name == "" || c.Database.User == "" {
			errs = append(errs, fmt.Errorf("DB_NAME and DB_USER are required for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}

	if c.RateLimit.LoginPerMinute < 1 || c.RateLimit.LoginBurst < 1 {
		errs = append(errs, fmt.Errorf("login rate limit must be positive"))
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
}
