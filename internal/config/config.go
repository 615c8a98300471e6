package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// API
	ListLimitDefault int
	ListLimitMax     int
	CORSAllowOrigin  string

	// HTTP server
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	ShutdownTimeout  time.Duration

	// Observability (optional)
	SentryDSN   string
	SentryDebug bool

	// Avatar storage (optional, S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for non-AWS providers
}

var supportedDrivers = map[string]bool{
	"sqlite": true,
	"pgx":    true,
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "clawboard"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/clawboard.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate"),

		// API
		ListLimitDefault: envInt("LIST_LIMIT_DEFAULT", 50),
		ListLimitMax:     envInt("LIST_LIMIT_MAX", 100),
		CORSAllowOrigin:  envString("CORS_ALLOW_ORIGIN", "*"),

		// HTTP server
		HTTPReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		HTTPWriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Observability
		SentryDSN:   envString("SENTRY_DSN", ""),
		SentryDebug: envBool("SENTRY_DEBUG", false),

		// Storage (avatar uploads are disabled when S3_BUCKET is empty)
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	err = cfg.Validate()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate checks cross-field constraints and normalizes list limits.
func (c *Config) Validate() error {
	if !supportedDrivers[c.DBDriver] {
		return &InvalidError{Key: "DB_DRIVER", Value: c.DBDriver, Reason: "must be sqlite or pgx"}
	}
	if c.ListLimitMax < 1 {
		return &InvalidError{Key: "LIST_LIMIT_MAX", Value: strconv.Itoa(c.ListLimitMax), Reason: "must be positive"}
	}
	if c.ListLimitDefault < 1 || c.ListLimitDefault > c.ListLimitMax {
		slog.Warn("config list limit default out of range, clamping",
			"default", c.ListLimitDefault,
			"max", c.ListLimitMax,
		)
		c.ListLimitDefault = min(max(c.ListLimitDefault, 1), c.ListLimitMax)
	}
	return nil
}

// InvalidError reports a configuration value that cannot be used.
type InvalidError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidError) Error() string {
	return "config " + e.Key + "=" + strconv.Quote(e.Value) + ": " + e.Reason
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StorageEnabled reports whether avatar uploads have a bucket to write to.
func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}
