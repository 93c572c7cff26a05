package config

import (
	"fmt"
	"os"
)

// Config holds all runtime settings, loaded once at startup and never mutated.
type Config struct {
	Port      string
	JWTSecret string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// QCCheckNames are the inspection checks applied to every GRN line item.
	QCCheckNames []string

	// DefaultWarehouses are seeded on first boot if the warehouse table is empty.
	DefaultWarehouses []string

	AdminEmail    string
	AdminPassword string
}

// QC check names kept in one place so the inspection form and the seed
// data can never drift apart.
var defaultQCChecks = []string{
	"dimensions",
	"surface_finish",
	"quantity_match",
	"documentation",
}

var defaultWarehouses = []string{
	"Main Store",
	"Raw Material Store",
	"Finished Goods Store",
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		DBHost:            getEnv("DB_HOST", "127.0.0.1"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "root"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "erp"),
		QCCheckNames:      defaultQCChecks,
		DefaultWarehouses: defaultWarehouses,
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
	}
	return cfg
}

// DSN builds the MySQL connection string. DATABASE_URL wins if set.
func (c *Config) DSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
