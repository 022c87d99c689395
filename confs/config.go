package confs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment besides
// the database settings (those stay in the db package, next to the DSN
// assembly).
type Config struct {
	Port          string
	GeminiAPIKey  string
	GeminiModel   string
	AdminUser     string
	AdminPassword string
	StorageURL    string
	StorageKey    string
	StorageBucket string
}

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3536"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AdminUser:     os.Getenv("ADMIN_USER"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		StorageURL:    os.Getenv("STORAGE_URL"),
		StorageKey:    os.Getenv("STORAGE_KEY"),
		StorageBucket: getEnv("STORAGE_BUCKET", "gallery"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("missing required configuration: GEMINI_API_KEY")
	}
	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("missing required configuration: ADMIN_USER and ADMIN_PASSWORD")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
