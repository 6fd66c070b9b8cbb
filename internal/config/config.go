package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	AllowedOrigin string
	AdminEmail    string
	AdminPassword string
	AdminUsername string
	SwaggerHost   string

	// Agent identity composed into public inquiry messages.
	AgentName      string
	AgentIPCode    string
	WhatsAppNumber string
}

// Load builds Config from environment with sensible defaults.
// JWT_SECRET and MYSQL_DSN are fatal when absent.
func Load() *Config {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       os.Getenv("MYSQL_DSN"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "*"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
		AgentName:      getEnv("AGENT_NAME", "Insurance Agent"),
		AgentIPCode:    os.Getenv("AGENT_IP_CODE"),
		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN is required")
	}

	return cfg
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
