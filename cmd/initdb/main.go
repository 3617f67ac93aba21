// Command initdb provisions the attendance database and table. Destructive:
// any existing attendance table is dropped and recreated.
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/config"
	persistence "github.com/imanbakhtiari/staff-attendance-telegramBot/internal/persistence/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()
	ctx := context.Background()

	if err := persistence.EnsureDatabase(ctx, cfg.AdminDSN(), cfg.DBName); err != nil {
		log.Fatalf("ensure database: %v", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := persistence.RecreateTable(ctx, pool); err != nil {
		log.Fatalf("recreate schema: %v", err)
	}
	log.Println("attendance schema created successfully")
}
