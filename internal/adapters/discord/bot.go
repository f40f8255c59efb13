package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"tellobot/internal/config"
	"tellobot/internal/ports/input"
	"tellobot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	catalog input.CatalogUseCase
	t       output.T
	logger  *zap.Logger
}

// NewBot creates a Bot and wires use cases -> handler.
func NewBot(
	cfg *config.Config,
	catalogUC input.CatalogUseCase,
	dispatchUC input.DispatchUseCase,
	localeUC input.LocaleUseCase,
	translator output.T,
	logger *zap.Logger,
) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(catalogUC, dispatchUC, localeUC, translator, logger),
		catalog: catalogUC,
		t:       translator,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case CommandTello:
		b.handler.HandleTello(s, i)
	case CommandLocale:
		b.handler.HandleLocale(s, i)
	case CommandBlocks:
		b.handler.HandleBlocks(s, i)
	}
}

// Start registers the commands and serves interactions until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	commands := BuildCommands(b.catalog, b.t)
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	b.logger.Info("🤖 Bot online", zap.String("user", b.session.State.User.Username), zap.Int("commands", len(commands)))
	<-ctx.Done()
	return nil
}
