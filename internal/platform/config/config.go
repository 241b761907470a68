package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string

	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "100-M"

	// Balances and statistics cache
	CacheSize int
	CacheTTL  time.Duration

	SentryDSN string
	Location  *time.Location // school timezone used for "today" and audit timestamps
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "school-fund-ledger")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CACHE_SIZE", 64)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("TIMEZONE", "UTC")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "school-fund-ledger"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.CacheSize = viper.GetInt("CACHE_SIZE")
	cacheTTLStr := viper.GetString("CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.CacheTTL = cacheTTL

	cfg.SentryDSN = viper.GetString("SENTRY_DSN")

	tz := viper.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to UTC.\n", tz)
	}
	cfg.Location = loc

	return cfg, nil
}

// Now returns the current time in the configured school timezone.
func (c *Config) Now() time.Time {
	if c == nil || c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}
