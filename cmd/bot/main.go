package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/sorting-hat-bot/internal/config"
	"github.com/aliskhannn/sorting-hat-bot/internal/delivery/telegram"
	"github.com/aliskhannn/sorting-hat-bot/internal/logger"
	"github.com/aliskhannn/sorting-hat-bot/internal/repository"
	"github.com/aliskhannn/sorting-hat-bot/internal/service"
	"github.com/aliskhannn/sorting-hat-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot api", zap.Error(err))
	}
	bot.Debug = cfg.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Meet the Sorting Hat",
		},
		{
			Command:     "quiz",
			Description: "Find out which house you belong to",
		},
		{
			Command:     "result",
			Description: "Show your last result",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	shareURL := cfg.ShareURL
	if shareURL == "" {
		shareURL = "https://t.me/" + bot.Self.UserName
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo := repository.NewQuestionRepository()
	quizStorage := storage.NewQuizStorage()

	sortingService := service.NewSortingService(questionRepo)
	janitorService := service.NewJanitorService(quizStorage, cfg.Janitor.Schedule, cfg.Quiz.SessionTTL, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		sortingService,
		quizStorage,
		questionRepo,
		telegram.Options{
			ImagesDir: cfg.ImagesDir,
			ShareURL:  shareURL,
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return janitorService.Start(gctx) })
	g.Go(func() error {
		defer bot.StopReceivingUpdates()
		return handler.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped with error", zap.Error(err))
		return
	}

	lg.Info("shutdown signal received")
}
