package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Data   DataConfig
	Server ServerConfig
}

// DataConfig holds settings for the on-disk reference dataset
type DataConfig struct {
	// Dir is the directory containing country.json, state.json and city.json
	Dir string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	// Export responses can be large, so the write timeout is generous
	// by default
	ReadTimeoutSec  int
	WriteTimeoutSec int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		Server: ServerConfig{
			Port:            getEnv("APP_PORT", "8080"),
			ReadTimeoutSec:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeoutSec: getEnvAsInt("SERVER_WRITE_TIMEOUT", 60),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
