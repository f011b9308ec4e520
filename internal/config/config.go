package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth
	TokenTTL time.Duration

	// Chat relay
	ChatAPIKey  string
	ChatAPIURL  string
	ChatModel   string
	ChatTimeout time.Duration

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "intentions_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		TokenTTL: parseDuration(getEnv("TOKEN_TTL", "720h"), 720*time.Hour),

		ChatAPIKey:  getEnv("CHAT_API_KEY", ""),
		ChatAPIURL:  getEnv("CHAT_API_URL", "https://api.openai.com/v1/chat/completions"),
		ChatModel:   getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ChatTimeout: parseDuration(getEnv("CHAT_TIMEOUT", "60s"), 60*time.Second),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
