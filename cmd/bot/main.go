package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	mainLogger := logger.Named("main")

	logCloser, err := logger.Init(config.LoadLogConfig())
	if err != nil {
		// Keep going on stdout, a log file problem is not worth stopping for.
		mainLogger.WithError(err).Error("Could not open log file, logging to stdout only")
	}
	defer logCloser.Close()
	mainLogger.Info("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// Missing credentials are the only fatal condition; nothing else stops the poller.
		mainLogger.WithError(err).Fatal("Some environment variables are missing or invalid")
	}

	mainLogger.WithFields(logrus.Fields{
		"log_level":     cfg.LogLevel,
		"environment":   cfg.Environment,
		"chat_id":       cfg.TelegramChatID,
		"poll_interval": cfg.PollInterval.String(),
	}).Info("Configuration loaded")

	// Initialize Telegram Bot, offline: no network call at startup
	bot, err := telegram.NewBot(cfg.TelegramToken, func(err error, c telebot.Context) { // Global error handler
		logger.Named("telebot").WithError(err).Error("Telegram bot error")
	})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	mainLogger.Debug("Telegram bot created")

	apiClient := practicum.NewClient(practicum.ClientConfig{
		Endpoint: cfg.PracticumEndpoint,
		Token:    cfg.PracticumToken,
		Timeout:  cfg.RequestTimeout,
	}, logger.Named("practicum"))

	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Named("notifier"))
	poller := app.NewPoller(
		apiClient,
		homework.NewValidator(),
		app.NewDeduplicator(),
		notifier,
		scheduler.NewPollScheduler(cfg.PollInterval, logger.Named("scheduler")),
		logger.Named("poller"),
		cfg.FromDate,
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poller stopped unexpectedly")
	}
	mainLogger.Info("Application shut down gracefully.")
}
