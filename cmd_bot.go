package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/bernoulli/internal/bot"
	"github.com/example/bernoulli/internal/chart"
	"github.com/example/bernoulli/internal/database"
	"github.com/example/bernoulli/internal/lesson"
	"github.com/example/bernoulli/internal/scheduler"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// botCmd runs the Telegram bot
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the lesson as a Telegram bot",
	Long: `Serves the lesson over Telegram long polling until SIGINT or SIGTERM.

Requires TELEGRAM_BOT_TOKEN. Sessions are kept in DATABASE_URL (in-memory
SQLite by default) and purged after SESSION_TTL of inactivity.`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireBotToken(); err != nil {
		return err
	}

	content, err := loadLesson(cfg)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected", zap.String("driver", database.DriverFor(cfg.DatabaseURL)))

	sessions := database.NewSessionRepository(db)
	purge := scheduler.New(sessions, cfg.SessionTTL, cfg.PurgeInterval, logger)
	if err := purge.Start(); err != nil {
		return err
	}
	defer purge.Stop()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return err
	}
	api.Debug = cfg.BotDebug
	logger.Info("authorized on account", zap.String("username", api.Self.UserName))

	b := bot.New(api, lesson.New(content), sessions,
		chart.NewRenderer(cfg.ChartWidth, cfg.ChartHeight), logger, bot.DefaultConfig())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("bot started, press Ctrl+C to stop")
	if err := b.Start(ctx); err != nil {
		return err
	}
	logger.Info("bot stopped successfully")
	return nil
}
