package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Intel   IntelAPIConfig
	Session SessionConfig
	Cache   CacheConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	DashboardURL       string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type IntelAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	StorageKey string
	FilePath   string
	CookieName string
	JWTSecret  string
}

type CacheConfig struct {
	FreshnessWindow time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			DashboardURL:       getEnv("DASHBOARD_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Intel: IntelAPIConfig{
			BaseURL: getEnv("INTEL_API_BASE_URL", "https://api.brandscope.io"),
			Timeout: getEnvAsDuration("INTEL_API_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			StorageKey: getEnv("SESSION_STORAGE_KEY", "auth-storage"),
			FilePath:   getEnv("SESSION_FILE_PATH", "data/auth-storage.json"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "auth-storage"),
			JWTSecret:  getEnv("JWT_SECRET", ""),
		},
		Cache: CacheConfig{
			FreshnessWindow: getEnvAsDuration("CACHE_FRESHNESS_WINDOW", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
