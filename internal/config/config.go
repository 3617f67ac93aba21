// Package config centralises configuration parsing for the attendance bot.
package config

import (
	"fmt"
	"os"
)

// Config captures runtime configuration values. It is built once in main and
// passed by reference; nothing reads the environment after startup.
type Config struct {
	BotToken string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// AdminDBName is the maintenance database the schema initializer
	// connects to when creating DBName.
	AdminDBName string

	MetricsAddress string
}

// Load reads environment variables into Config. Credentials are not
// validated here; empty values surface as connection errors at first use.
func Load() *Config {
	return &Config{
		BotToken:       getEnv("TELEGRAM_TOKEN", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", ""),
		AdminDBName:    getEnv("ADMIN_DB_NAME", "postgres"),
		MetricsAddress: getEnv("METRICS_ADDRESS", ":9090"),
	}
}

// DSN returns the connection string for the attendance database.
func (c *Config) DSN() string {
	return c.dsn(c.DBName)
}

// AdminDSN returns the connection string for the maintenance database.
func (c *Config) AdminDSN() string {
	return c.dsn(c.AdminDBName)
}

func (c *Config) dsn(dbname string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbname,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
