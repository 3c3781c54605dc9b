package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	Env         string
	LogLevel    string
	Version     string
	SwaggerHost string

	MySQLDSN     string
	DBRetryDelay time.Duration
	ResetDB      bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string
	JWTExpiry time.Duration

	FrontendURL string

	GeminiAPIKey string
	GeminiModel  string

	Email EmailConfig

	NotifyWorkers   int
	NotifyQueueSize int

	AdminSeed AdminSeedConfig
}

// AdminSeedConfig is the administrator account created by cmd/seed.
type AdminSeedConfig struct {
	Name     string
	Email    string
	Password string
}

// EmailConfig selects and configures the outbound email transport.
type EmailConfig struct {
	ResendAPIKey string
	Host         string
	Port         int
	Secure       bool
	User         string
	Pass         string
	From         string
	AdminAddress string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/redcross?charset=utf8mb4&parseTime=True&loc=Local"),
		DBRetryDelay: getEnvDuration("DB_RETRY_DELAY", 10*time.Second),
		ResetDB:      getEnvBool("RESET_DB", false),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
		JWTExpiry: getEnvDuration("JWT_EXPIRY", 24*time.Hour),

		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),

		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		Email: EmailConfig{
			ResendAPIKey: strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
			Host:         os.Getenv("EMAIL_HOST"),
			Port:         getEnvInt("EMAIL_PORT", 587),
			Secure:       getEnvBool("EMAIL_SECURE", false),
			User:         os.Getenv("EMAIL_USER"),
			Pass:         os.Getenv("EMAIL_PASS"),
			From:         getEnv("EMAIL_FROM", getEnv("EMAIL_USER", "ircstrp@gmail.com")),
			AdminAddress: os.Getenv("ADMIN_EMAIL"),
		},

		NotifyWorkers:   getEnvInt("NOTIFY_WORKERS", 2),
		NotifyQueueSize: getEnvInt("NOTIFY_QUEUE_SIZE", 100),

		AdminSeed: AdminSeedConfig{
			Name:     getEnv("ADMIN_SEED_NAME", "Administrator"),
			Email:    strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_SEED_EMAIL"))),
			Password: os.Getenv("ADMIN_SEED_PASSWORD"),
		},
	}
}

// SMTPConfigured reports whether host and credentials for SMTP are present.
func (e EmailConfig) SMTPConfigured() bool {
	return e.Host != "" && e.User != "" && e.Pass != ""
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
