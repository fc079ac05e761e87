package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every setting the process needs. It is built once in main
// and handed to the DB connector and server explicitly.
type Config struct {
	// DBURL, when set, overrides the individual DB_* parameters.
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// JWTSecret signs the access token returned at login.
	JWTSecret string

	ListenAddr string
}

// Load reads environment variables (from a .env file if present) into a Config.
func Load() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		DBURL:      os.Getenv("DB_URL"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "bill_scanner_db"),
		JWTSecret:  getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		ListenAddr: "0.0.0.0:" + getenv("PORT", "5000"),
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
