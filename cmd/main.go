package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/triviabot/internal/bot"
	"github.com/DanRulev/triviabot/internal/client"
	"github.com/DanRulev/triviabot/internal/config"
	"github.com/DanRulev/triviabot/internal/repository"
	"github.com/DanRulev/triviabot/internal/service"
	"github.com/DanRulev/triviabot/internal/storage/cache"
	"github.com/DanRulev/triviabot/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db)

	clients := client.InitClients()
	services := service.InitServices(clients, repos, cfg.Quiz, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache, logger)
	if err != nil {
		logger.Fatal("failed init telegram api", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler.Start(ctx)
}
