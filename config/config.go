package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, upstream quote providers, caching and Postgres connection details.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	CORS_ORIGINS=*
//	AWESOMEAPI_URL=https://economia.awesomeapi.com.br
//	TWELVEDATA_URL=https://api.twelvedata.com
//	TWELVEDATA_API_KEY=secret
//	HISTORY_TIMEZONE=America/Sao_Paulo
//	CACHE_DRIVER=memory
//	POSTGRES_HOST=localhost
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Quote providers
	History  HistoryConfig  // History normalization settings
	Cache    CacheConfig    // Current-quote cache
	Postgres PostgresConfig // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string   // The TCP port the HTTP server will listen on (e.g., "8080")
	CORSOrigins []string // Allowed origins; "*" allows any
}

// UpstreamConfig holds the quote provider endpoints and credentials.
//
// Fields:
//   - AwesomeAPIURL: base URL for current quotes and daily history.
//   - TwelveDataURL: base URL for intraday (1D) history.
//   - TwelveDataAPIKey: API key for TwelveData; 1D history fails without it.
//   - Timeout: per-request timeout for upstream calls.
type UpstreamConfig struct {
	AwesomeAPIURL    string
	TwelveDataURL    string
	TwelveDataAPIKey string
	Timeout          time.Duration
}

// HistoryConfig controls how 1D calendar timestamps are read.
type HistoryConfig struct {
	TimeZone string // IANA name or "Local"
}

// CacheConfig selects the current-quote cache driver.
//
// Fields:
//   - Driver: "memory", "redis" or "none".
//   - TTL: how long a quote stays cached.
//   - RedisAddr/RedisPassword/RedisDB: used when Driver is "redis".
type CacheConfig struct {
	Driver        string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

var validCacheDrivers = map[string]bool{"memory": true, "redis": true, "none": true}

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// TWELVEDATA_API_KEY falls back to API_KEY when unset.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.SetDefault("AWESOMEAPI_URL", "https://economia.awesomeapi.com.br")
	viper.SetDefault("TWELVEDATA_URL", "https://api.twelvedata.com")
	viper.SetDefault("UPSTREAM_TIMEOUT", "5s")

	viper.SetDefault("HISTORY_TIMEZONE", "Local")

	viper.SetDefault("CACHE_DRIVER", "memory")
	viper.SetDefault("CACHE_TTL", "30s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "conversor")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	apiKey := viper.GetString("TWELVEDATA_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("API_KEY")
	}

	AppConfig = Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			CORSOrigins: splitList(viper.GetString("CORS_ORIGINS")),
		},
		Upstream: UpstreamConfig{
			AwesomeAPIURL:    strings.TrimRight(viper.GetString("AWESOMEAPI_URL"), "/"),
			TwelveDataURL:    strings.TrimRight(viper.GetString("TWELVEDATA_URL"), "/"),
			TwelveDataAPIKey: apiKey,
			Timeout:          viper.GetDuration("UPSTREAM_TIMEOUT"),
		},
		History: HistoryConfig{
			TimeZone: viper.GetString("HISTORY_TIMEZONE"),
		},
		Cache: CacheConfig{
			Driver:        strings.ToLower(viper.GetString("CACHE_DRIVER")),
			TTL:           viper.GetDuration("CACHE_TTL"),
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the PostgreSQL connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// Location resolves HistoryConfig.TimeZone. "Local" and "" map to time.Local.
func (h HistoryConfig) Location() (*time.Location, error) {
	if h.TimeZone == "" || strings.EqualFold(h.TimeZone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(h.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_TIMEZONE %q: %w", h.TimeZone, err)
	}
	return loc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// missingFields lists required variables that are absent or invalid.
func missingFields(c Config) []string {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Upstream.AwesomeAPIURL == "" {
		missing = append(missing, "AWESOMEAPI_URL")
	}
	if c.Upstream.TwelveDataURL == "" {
		missing = append(missing, "TWELVEDATA_URL")
	}
	if c.Upstream.Timeout <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT")
	}
	if _, err := c.History.Location(); err != nil {
		missing = append(missing, "HISTORY_TIMEZONE")
	}
	if !validCacheDrivers[c.Cache.Driver] {
		missing = append(missing, "CACHE_DRIVER")
	}
	if c.Cache.Driver == "redis" && c.Cache.RedisAddr == "" {
		missing = append(missing, "REDIS_ADDR")
	}
	if c.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if c.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if c.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if c.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if c.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}

// validateConfig terminates the application when required variables are
// missing. The TwelveData API key is not required: without it only 1D
// history is unavailable.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
