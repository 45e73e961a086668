package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode        string
	Port           string
	TZ             string
	TrustedProxies []string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBConnectAttempts int
	DBConnectDelay    time.Duration

	LogLevel  string
	LogFormat string

	RateLimitRPS   float64
	RateLimitBurst int

	ShutdownTimeout time.Duration

	// EnvFile is the dotenv file that was loaded, if any.
	EnvFile string
}

// Load reads the configuration from the environment. envFile names a dotenv
// file to load first; when empty, ENV_FILE is consulted and, in debug mode,
// the nearest .env.dev in the working directory or its parents is used.
// Variables already present in the environment win over the file.
func Load(envFile string) (*Config, error) {
	loaded, err := loadEnvFile(envFile)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GinMode:        getenv("GIN_MODE", "debug"),
		Port:           getenv("PORT", "8080"),
		TZ:             getenv("TZ", "UTC"),
		TrustedProxies: getenvList("TRUSTED_PROXIES", []string{"127.0.0.1", "::1"}),

		DBDriver:   strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPass:     getenv("DB_PASS", ""),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		SQLitePath: getenv("SQLITE_PATH", "books.db"),

		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "text")),

		EnvFile: loaded,
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	var errs []error
	cfg.DBMaxOpenConns = getenvInt("DB_MAX_OPEN_CONNS", 25, &errs)
	cfg.DBMaxIdleConns = getenvInt("DB_MAX_IDLE_CONNS", 25, &errs)
	cfg.DBConnMaxLifetime = getenvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute, &errs)
	cfg.DBConnectAttempts = getenvInt("DB_CONNECT_ATTEMPTS", 10, &errs)
	cfg.DBConnectDelay = getenvDuration("DB_CONNECT_DELAY", 2*time.Second, &errs)
	cfg.RateLimitRPS = getenvFloat("RATE_LIMIT_RPS", 0, &errs)
	cfg.RateLimitBurst = getenvInt("RATE_LIMIT_BURST", 20, &errs)
	cfg.ShutdownTimeout = getenvDuration("SHUTDOWN_TIMEOUT", 15*time.Second, &errs)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}

	if c.DBMaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DBMaxOpenConns))
	}
	if c.DBMaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_IDLE_CONNS must not be negative, got %d", c.DBMaxIdleConns))
	}
	if c.DBConnectAttempts <= 0 {
		errs = append(errs, fmt.Errorf("DB_CONNECT_ATTEMPTS must be positive, got %d", c.DBConnectAttempts))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive when rate limiting is on, got %d", c.RateLimitBurst))
	}

	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func loadEnvFile(envFile string) (string, error) {
	if envFile == "" {
		envFile = os.Getenv("ENV_FILE")
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return "", fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return envFile, nil
	}

	if getenv("GIN_MODE", "debug") != "debug" {
		return "", nil
	}

	path, ok := findUp(".env.dev")
	if !ok {
		return "", nil
	}
	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("load env file %s: %w", path, err)
	}

	return path, nil
}

func findUp(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvInt(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return def
	}
	return n
}

func getenvFloat(key string, def float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid number %q", key, v))
		return def
	}
	return f
}

func getenvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return def
	}
	return d
}
