package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/Olgakatash/polish-trainer-bot/internal/bot"
	"github.com/Olgakatash/polish-trainer-bot/internal/config"
	"github.com/Olgakatash/polish-trainer-bot/internal/scheduler"
	"github.com/Olgakatash/polish-trainer-bot/internal/service"
	"github.com/Olgakatash/polish-trainer-bot/internal/storage/cache"
	"github.com/Olgakatash/polish-trainer-bot/internal/vocab"

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

	store := vocab.Default()

	if cfg.Vocab.CSVPath != "" {
		if err := vocab.LoadCSV(store, cfg.Vocab.CSVPath); err != nil {
			logger.Warn("failed to load csv vocabulary", zap.Error(err))
		}
	}
	if cfg.Vocab.XLSXPath != "" {
		if err := vocab.LoadXLSX(store, cfg.Vocab.XLSXPath); err != nil {
			logger.Warn("failed to load xlsx vocabulary", zap.Error(err))
		}
	}
	if cfg.Vocab.SQLitePath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
		err := vocab.LoadSQLite(ctx, store, cfg.Vocab.SQLitePath)
		cancel()
		if err != nil {
			logger.Warn("failed to load sqlite vocabulary", zap.Error(err))
		}
	}

	logger.Info("vocabulary loaded", zap.Int("entries", store.Len()))

	sessions := cache.NewSessionStore()
	stats := cache.NewStatsStore()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	services := service.InitServices(store, sessions, stats, rng, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.Quiz.Length, services)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	if cfg.Reminder.Enabled {
		sched := scheduler.New(handler, stats, logger)
		if err := sched.Start(cfg.Reminder.Hour); err != nil {
			logger.Warn("failed to start reminder scheduler", zap.Error(err))
		} else {
			defer sched.Stop()
		}
	}

	handler.Start()
}
