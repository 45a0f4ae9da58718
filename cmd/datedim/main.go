package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"date_dimension/internal/app"
	"date_dimension/internal/domain/telegram"
	"date_dimension/internal/infra/config"
	idb "date_dimension/internal/infra/database"
	"date_dimension/internal/infra/logger"
	"date_dimension/internal/infra/scheduler"
	tgbot "date_dimension/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const botPollTimeout = 10 * time.Second

// botSettings builds the telebot settings for token, logging every handler
// error through botLogger.
func botSettings(token string, botLogger *logrus.Entry) telebot.Settings {
	return telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: botPollTimeout},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := botLogger.WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID).WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telebot error")
		},
	}
}

func main() {
	fmt.Println("Date dimension service starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}
	logger.Init(cfg)
	mainLogger := logger.Component("main")

	mainLogger.Infof("Configuration loaded. Driver: %s, Start: %s, Horizon: %d years, Environment: %s",
		cfg.DatabaseDriver, cfg.TableStart, cfg.HorizonYears, cfg.Environment)

	// Initialize Database Connection
	db, err := idb.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		mainLogger.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := idb.EnsureSchema(ctx, db, cfg.DatabaseDriver); err != nil {
		mainLogger.Fatalf("Could not prepare schema: %v", err)
	}

	// Initialize Repositories
	tableRepo := idb.NewDateTableRepository(db)
	overrideRepo := idb.NewOverrideRepository(db)

	// Initialize Services
	tableService := app.NewDateTableService(tableRepo, overrideRepo, cfg.ExportCSVPath, logger.Component("date_table_service"))
	adminService := app.NewAdminService(overrideRepo, cfg.AdminTelegramID)

	// Initialize Telegram Bot when a token is configured
	var bot *telebot.Bot
	var notifier telegram.Client
	if cfg.BotEnabled() {
		bot, err = telebot.NewBot(botSettings(cfg.TelegramToken, logger.Component("telebot")))
		if err != nil {
			mainLogger.Fatalf("Could not create Telegram bot: %v", err)
		}
		notifier = tgbot.NewTelebotAdapter(bot)
	}

	refreshScheduler := scheduler.NewRefreshScheduler(
		tableService,
		notifier,
		cfg.AdminTelegramID,
		logger.Component("scheduler"),
		cfg.CronSpecRefresh,
		cfg.TableStart,
		cfg.HorizonYears,
	)

	if err := refreshScheduler.RunOnce(ctx); err != nil {
		mainLogger.Fatalf("Initial date table refresh failed: %v", err)
	}
	if cfg.RunOnce {
		mainLogger.Info("RUN_ONCE set, exiting after initial refresh.")
		return
	}

	if err := refreshScheduler.Start(); err != nil {
		mainLogger.Fatalf("Could not start refresh scheduler: %v", err)
	}

	if bot != nil {
		handlerLogger := logger.Component("telegram")
		tgbot.RegisterBotCommands(ctx, bot, tgbot.NewCommandHandlers(tableService), adminService.IsAdmin, handlerLogger)
		tgbot.RegisterAdminHandlers(ctx, bot, tgbot.NewAdminHandlers(adminService, refreshScheduler), handlerLogger)
		mainLogger.Info("Telegram command handlers registered.")

		// Start bot in a goroutine so it doesn't block graceful shutdown handling
		go bot.Start()
	}

	mainLogger.Info("Application setup complete.")
	<-ctx.Done() // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	refreshScheduler.Stop()
	if bot != nil {
		bot.Stop()
	}
	mainLogger.Info("Application shut down gracefully.")
}
