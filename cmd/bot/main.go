package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tellobot/internal/adapters/discord"
	"tellobot/internal/application"
	"tellobot/internal/config"
	"tellobot/internal/infrastructure/database"
	"tellobot/internal/infrastructure/i18n"
	"tellobot/internal/infrastructure/logging"
	"tellobot/internal/infrastructure/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration: %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatalf("❌ Configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ Logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("❌ Bot stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	link, err := transport.New(cfg, logger)
	if err != nil {
		return err
	}
	defer link.Close()

	translator := i18n.NewTranslator(string(cfg.DefaultLocale), logger.Named("i18n"))
	catalogUC := application.NewCatalogService(translator)
	dispatchUC := application.NewDispatcher(link, logger.Named("dispatch"))
	localeUC := application.NewLocaleService(database.NewGuildSettingsRepository(pool), cfg.DefaultLocale, logger)

	bot, err := discord.NewBot(cfg, catalogUC, dispatchUC, localeUC, translator, logger.Named("discord"))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return link.Run(ctx) })
	g.Go(func() error { return bot.Start(ctx) })
	return g.Wait()
}
