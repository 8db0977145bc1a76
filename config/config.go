package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config collects the environment-backed settings the service needs.
type Config struct {
	Port        string
	Environment string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	FrontendURL string
}

// Load reads .env when present and collects settings from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:          getenv("PORT", "5000"),
		Environment:   getenv("APP_ENV", "development"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "inventory"),
		SQLitePath:    getenv("SQLITE_PATH", "inventory.db"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
