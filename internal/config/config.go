package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, loaded from the environment
// (.env in development).
type Config struct {
	Port string `envconfig:"PORT" default:"3000"`

	// Either a full DSN or discrete DB_* parts
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"storefront"`

	JWTSecret   string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	JWTTTLHours int    `envconfig:"JWT_TTL_HOURS" default:"24"`

	SessionTTLHours int    `envconfig:"SESSION_TTL_HOURS" default:"24"`
	StorageRoot     string `envconfig:"STORAGE_ROOT" default:"./storage"`

	// Bootstrap admin account, created at startup if missing
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// Load reads .env (when present) and parses the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Failed to parse environment: ", err)
	}
	return &cfg
}

// DSN returns the Postgres connection string
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
