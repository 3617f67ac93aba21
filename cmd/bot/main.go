package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/bot"
	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/clock"
	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/config"
	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/domain"
	persistence "github.com/imanbakhtiari/staff-attendance-telegramBot/internal/persistence/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("failed to create telegram client: %v", err)
	}

	repo := persistence.NewRepository(pool)
	service := domain.NewService(repo, clock.Now)
	handler := bot.NewHandler(api, service)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("metrics listening on %s", cfg.MetricsAddress)
		if err := http.ListenAndServe(cfg.MetricsAddress, mux); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdownCh
		log.Println("shutting down")
		cancel()
	}()

	log.Printf("attendance bot authorized as @%s", api.Self.UserName)
	bot.Run(ctx, api, handler)
}
