package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type Config struct {
	Environment       string `mapstructure:"GRS_ENVIRONMENT"`
	ServerName        string `mapstructure:"GRS_SERVER_NAME"`
	ServerAddress     string `mapstructure:"GRS_SERVER_BIND_ADDR"`
	ServerReadTimeout int16  `mapstructure:"GRS_SERVER_READ_TIMEOUT"`
	LogFormat         string `mapstructure:"GRS_LOG_FORMAT"` // text or json
	LogLevel          string `mapstructure:"GRS_LOG_LEVEL"`  // debug, info, warn, error
	RateLimitMax      int    `mapstructure:"GRS_RATE_LIMIT_MAX"`
	RateLimitWindow   int    `mapstructure:"GRS_RATE_LIMIT_WINDOW"`

	DbHost           string `mapstructure:"GRS_DB_HOST"`
	DbPort           int16  `mapstructure:"GRS_DB_PORT"`
	DbSSLMode        string `mapstructure:"GRS_DB_SSL"`
	DbUser           string `mapstructure:"GRS_DB_USER"`
	DbPassword       string `mapstructure:"GRS_DB_PASSWORD"`
	DbDatabaseName   string `mapstructure:"GRS_DB_DATABASE"`
	DbMaxConnections int    `mapstructure:"GRS_DB_MAX_CONNECTIONS"`

	// Redis (settings store)
	RedisHost string `mapstructure:"GRS_REDIS_HOST"`
	RedisPort int16  `mapstructure:"GRS_REDIS_PORT"`
	RedisDb   int    `mapstructure:"GRS_REDIS_DB"`
	RedisUser string `mapstructure:"GRS_REDIS_USER"`
	RedisPass string `mapstructure:"GRS_REDIS_PASS"`

	OtlpEndpoint   string `mapstructure:"GRS_OTLP_ENDPOINT"`
	JaegerEndpoint string `mapstructure:"GRS_JAEGER_ENDPOINT"`

	// Gemini (AI categorization oracle)
	GeminiAPIKey         string `mapstructure:"GRS_GEMINI_API_KEY"`
	GeminiModel          string `mapstructure:"GRS_GEMINI_MODEL"`
	GeminiBaseURL        string `mapstructure:"GRS_GEMINI_BASE_URL"`
	GeminiTimeoutSeconds int    `mapstructure:"GRS_GEMINI_TIMEOUT_SECONDS"`
}

// DefaultConfig generates a config with sane defaults.
// See: The example .env file in the package docs for default values.
func DefaultConfig() Config {
	return Config{
		Environment:       "local",
		ServerName:        "grocery-service",
		ServerAddress:     "0.0.0.0:3001",
		ServerReadTimeout: 60,
		LogFormat:         "text",
		LogLevel:          "info",
		RateLimitMax:      100,
		RateLimitWindow:   30,

		DbHost:           "localhost",
		DbPort:           5432,
		DbSSLMode:        "disable",
		DbUser:           "postgres",
		DbPassword:       "postgres",
		DbDatabaseName:   "grocery",
		DbMaxConnections: 100,

		RedisHost: "localhost",
		RedisPort: 6379,
		RedisDb:   0,
		RedisUser: "",
		RedisPass: "",

		OtlpEndpoint:   "localhost:4317",
		JaegerEndpoint: "http://localhost:14268/api/traces",

		GeminiAPIKey:         "",
		GeminiModel:          "gemini-3-flash-preview",
		GeminiBaseURL:        "https://generativelanguage.googleapis.com/v1beta",
		GeminiTimeoutSeconds: 45,
	}
}

// LoadConfig will attempt to load a configuration from the default file location and fallback to environment variables.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("GRS_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	var cfg Config
	var err error

	if _, err = os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		cfg, err = ConfigFromEnvironment()
	} else {
		cfg, err = ConfigFromFile(envFile)
	}

	return cfg, err
}

// ConfigFromEnvironment will look for the specified configuration from environment variables
// See package docs for a list of available environment variables.
func ConfigFromEnvironment() (config Config, err error) {
	// Set defaults
	config = DefaultConfig()
	viper.SetDefault("GRS_ENVIRONMENT", config.Environment)
	viper.SetDefault("GRS_SERVER_NAME", config.ServerName)
	viper.SetDefault("GRS_SERVER_BIND_ADDR", config.ServerAddress)
	viper.SetDefault("GRS_SERVER_READ_TIMEOUT", config.ServerReadTimeout)
	viper.SetDefault("GRS_LOG_LEVEL", config.LogLevel)
	viper.SetDefault("GRS_LOG_FORMAT", config.LogFormat)
	viper.SetDefault("GRS_RATE_LIMIT_MAX", config.RateLimitMax)
	viper.SetDefault("GRS_RATE_LIMIT_WINDOW", config.RateLimitWindow)
	viper.SetDefault("GRS_DB_HOST", config.DbHost)
	viper.SetDefault("GRS_DB_PORT", config.DbPort)
	viper.SetDefault("GRS_DB_SSL", config.DbSSLMode)
	viper.SetDefault("GRS_DB_USER", config.DbUser)
	viper.SetDefault("GRS_DB_PASSWORD", config.DbPassword)
	viper.SetDefault("GRS_DB_DATABASE", config.DbDatabaseName)
	viper.SetDefault("GRS_DB_MAX_CONNECTIONS", config.DbMaxConnections)
	viper.SetDefault("GRS_REDIS_HOST", config.RedisHost)
	viper.SetDefault("GRS_REDIS_PORT", config.RedisPort)
	viper.SetDefault("GRS_REDIS_USER", config.RedisUser)
	viper.SetDefault("GRS_REDIS_PASS", config.RedisPass)
	viper.SetDefault("GRS_REDIS_DB", config.RedisDb)
	viper.SetDefault("GRS_OTLP_ENDPOINT", config.OtlpEndpoint)
	viper.SetDefault("GRS_JAEGER_ENDPOINT", config.JaegerEndpoint)
	viper.SetDefault("GRS_GEMINI_API_KEY", config.GeminiAPIKey)
	viper.SetDefault("GRS_GEMINI_MODEL", config.GeminiModel)
	viper.SetDefault("GRS_GEMINI_BASE_URL", config.GeminiBaseURL)
	viper.SetDefault("GRS_GEMINI_TIMEOUT_SECONDS", config.GeminiTimeoutSeconds)

	// Override config values with environment variables
	viper.AutomaticEnv()
	err = viper.Unmarshal(&config)
	return
}

// ConfigFromFile will look for the specified configuration file in the current directory and initialize
// a Config from it. Values provided by environment variables will override ones found in
// the file. See package docs for a list of available environment variables.
func ConfigFromFile(f string) (config Config, err error) {
	if config, err = ConfigFromEnvironment(); err != nil {
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigFile(f)
	viper.SetConfigType("env")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)

	return
}

// Fiber initializes and returns a Fiber config based on server config values.
// See https://docs.gofiber.io/api/fiber#config
func (c Config) Fiber() fiber.Config {
	return fiber.Config{
		ReadTimeout: time.Second * time.Duration(c.ServerReadTimeout),
		BodyLimit:   1 * 1024 * 1024, // 1MB, payloads are short text lists
	}
}

// DbConnectionString generates a connection string for the database based on config values.
func (c Config) DbConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s", c.DbUser, url.QueryEscape(c.DbPassword), c.DbHost, c.DbPort, c.DbDatabaseName, c.DbSSLMode)
}

// RedisAddr generates the host:port address of the settings store.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// GetSlogLevel converts the string log level to slog.Level.
func (c Config) GetSlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo // default fallback
	}
}

// GetAIConfig converts config values to the Gemini client configuration struct.
func (c Config) GetAIConfig() AIConfig {
	return AIConfig{
		APIKey:  c.GeminiAPIKey,
		Model:   c.GeminiModel,
		BaseURL: c.GeminiBaseURL,
		Timeout: time.Duration(c.GeminiTimeoutSeconds) * time.Second,
	}
}

// AIConfig holds Gemini oracle client configuration
type AIConfig struct {
	APIKey  string // fallback key, the settings provider may supply a user key instead
	Model   string // e.g., "gemini-3-flash-preview"
	BaseURL string
	Timeout time.Duration
}
