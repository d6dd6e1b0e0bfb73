package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DataDir           string
	Environment       string
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedSampleData    bool
}

func Load() Config {
	return Config{
		DataDir:           getEnv("DAYFLOW_DATA_DIR", "data"),
		Environment:       getEnv("DAYFLOW_ENV", "development"),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@dayflow.local"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedSampleData:    getEnvBool("SEED_SAMPLE_DATA", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "t", "true", "yes":
		return true
	case "0", "f", "false", "no":
		return false
	default:
		return fallback
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DAYFLOW_DATA_DIR is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.SeedAdminPassword) == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must be set in production")
	}
	return nil
}
