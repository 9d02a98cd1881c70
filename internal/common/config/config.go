package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	GeneratorURL   string
	StoreURL       string
	StoreDBPath    string
	MigrationsPath string
	StreamPort     string
	CacheSize      int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),

		GeneratorURL:   getEnv("GENERATOR_URL", "http://localhost:3001"),
		StoreURL:       getEnv("STORE_URL", "http://localhost:3002"),
		StoreDBPath:    getEnv("STORE_DB_PATH", "data/store.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_init_store.sql"),
		StreamPort:     getEnv("STREAM_PORT", "3101"),
		CacheSize:      getEnvAsInt("CACHE_SIZE", 128),
	}
}

// LoadDotEnv подтягивает .env поверх окружения везде, кроме production.
func LoadDotEnv(path string) {
	if os.Getenv("ENV") == "production" {
		return
	}
	if err := godotenv.Overload(path); err != nil {
		log.Printf("[CONFIG] %s not loaded, using system environment: %v", path, err)
		return
	}
	log.Printf("[CONFIG] environment loaded from %s", path)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
