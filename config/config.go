package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap/zapcore"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"

	defaultMongoDB = "plantsDatabase"
)

type Config struct {
	Env          string
	Port         string
	StoreDriver  string
	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration
	SQLitePath   string
	LogLevel     zapcore.Level
}

func (c *Config) Production() bool { return c.Env == "production" }

// Load reads .env (or .env.production when APP_ENV=production) into the
// environment, then builds a Config from it. A missing env file is fine.
func Load() (*Config, error) {
	envFile := ".env"
	if os.Getenv("APP_ENV") == "production" {
		envFile = ".env.production"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "8080"),
		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", DriverMongo)),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017/plantsDatabase"),
		MongoDB:     os.Getenv("MONGO_DB"),
		SQLitePath:  getenv("SQLITE_PATH", "gardentrack.db"),
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	// Without MONGO_DB the database named in the URI path is used.
	if cfg.StoreDriver == DriverMongo {
		cs, err := connstring.ParseAndValidate(cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("invalid MONGO_URI: %w", err)
		}
		if cfg.MongoDB == "" {
			cfg.MongoDB = cs.Database
		}
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = defaultMongoDB
	}

	// MONGO_TIMEOUT is given in seconds.
	timeout := getenv("MONGO_TIMEOUT", "10")
	d, err := time.ParseDuration(timeout + "s")
	if err != nil || d <= 0 {
		return nil, fmt.Errorf("invalid MONGO_TIMEOUT %q", timeout)
	}
	cfg.MongoTimeout = d

	level, err := zapcore.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
