package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TELEGRAM_TOKEN", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "ADMIN_DB_NAME", "METRICS_ADDRESS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "5432", cfg.DBPort)
	require.Equal(t, "postgres", cfg.AdminDBName)
	require.Equal(t, ":9090", cfg.MetricsAddress)
	require.Empty(t, cfg.BotToken)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:      "db",
		DBPort:      "5433",
		DBUser:      "hr",
		DBPassword:  "secret",
		DBName:      "attendance",
		AdminDBName: "postgres",
	}
	require.Equal(t,
		"host=db port=5433 user=hr password=secret dbname=attendance sslmode=disable",
		cfg.DSN())
	require.Equal(t,
		"host=db port=5433 user=hr password=secret dbname=postgres sslmode=disable",
		cfg.AdminDSN())
}
