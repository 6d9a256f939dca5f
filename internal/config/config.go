package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/Schmandi/HIRED-server/pkg/util"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Limiter  LimiterConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token issuance parameters. The access and refresh
// secrets must differ so one captured secret cannot forge the other token
// kind. TTLs and the cookie max-age are configured independently; keeping
// the cookie max-age in line with the refresh TTL is an operator concern.
type AuthConfig struct {
	AccessTokenSecret      string
	RefreshTokenSecret     string
	AccessTokenTTLSeconds  int
	RefreshTokenTTLHours   int
	SessionCookieMaxAgeHrs int
	BcryptCost             int
}

// LimiterConfig bounds login attempts per client within a fixed window.
type LimiterConfig struct {
	Enabled       bool
	MaxAttempts   int
	WindowSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "hired-server"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3500"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			AccessTokenSecret:      os.Getenv("ACCESS_TOKEN_SECRET"),
			RefreshTokenSecret:     os.Getenv("REFRESH_TOKEN_SECRET"),
			AccessTokenTTLSeconds:  getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_SECONDS", 900),
			RefreshTokenTTLHours:   getEnvAsInt("AUTH_REFRESH_TOKEN_TTL_HOURS", 168),
			SessionCookieMaxAgeHrs: getEnvAsInt("AUTH_SESSION_COOKIE_MAX_AGE_HOURS", 168),
			BcryptCost:             getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Limiter: LimiterConfig{
			Enabled:       getEnvAsBool("LOGIN_LIMITER_ENABLED", true),
			MaxAttempts:   getEnvAsInt("LOGIN_LIMITER_MAX_ATTEMPTS", 10),
			WindowSeconds: getEnvAsInt("LOGIN_LIMITER_WINDOW_SECONDS", 60),
		},
	}

	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would make issued tokens forgeable.
// A failure here is a startup-fatal condition, never a per-request error.
func (a AuthConfig) Validate() error {
	if a.AccessTokenSecret == "" {
		return apperrors.NewConfigError("ACCESS_TOKEN_SECRET is required")
	}
	if a.RefreshTokenSecret == "" {
		return apperrors.NewConfigError("REFRESH_TOKEN_SECRET is required")
	}
	if a.AccessTokenSecret == a.RefreshTokenSecret {
		return apperrors.NewConfigError("access and refresh token secrets must differ")
	}
	if a.AccessTokenTTLSeconds <= 0 {
		return apperrors.NewConfigError("access token TTL must be positive")
	}
	if a.RefreshTokenTTLHours <= 0 {
		return apperrors.NewConfigError("refresh token TTL must be positive")
	}
	return nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(a.AccessTokenTTLSeconds) * time.Second
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (a AuthConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(a.RefreshTokenTTLHours) * time.Hour
}

// SessionCookieMaxAge returns the cookie lifetime, configured independently
// of the refresh token's own expiry.
func (a AuthConfig) SessionCookieMaxAge() time.Duration {
	return time.Duration(a.SessionCookieMaxAgeHrs) * time.Hour
}

// Window returns the limiter window duration.
func (l LimiterConfig) Window() time.Duration {
	return time.Duration(l.WindowSeconds) * time.Second
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
