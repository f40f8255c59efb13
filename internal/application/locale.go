package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/ports/input"
	"tellobot/internal/ports/output"
)

var _ input.LocaleUseCase = (*LocaleService)(nil)

// LocaleService picks the catalog locale for a Discord interaction. The
// preference is host state; the catalog itself only ever sees a locale string.
type LocaleService struct {
	settingsRepo  output.GuildSettingsRepository
	defaultLocale domain.Locale
	logger        *zap.Logger
}

func NewLocaleService(settingsRepo output.GuildSettingsRepository, defaultLocale domain.Locale, logger *zap.Logger) *LocaleService {
	return &LocaleService{
		settingsRepo:  settingsRepo,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// LocaleFor returns the guild's stored locale, else userLocale when it is
// supported, else the configured default.
func (s *LocaleService) LocaleFor(ctx context.Context, guildID, userLocale string) domain.Locale {
	if guildID != "" {
		settings, err := s.settingsRepo.FindByGuildID(ctx, guildID)
		switch {
		case err == nil:
			if l, perr := domain.ParseLocale(settings.Locale); perr == nil {
				return l
			}
			s.logger.Warn("stored guild locale is not supported", zap.String("guild_id", guildID), zap.String("locale", settings.Locale))
		case !errors.Is(err, domain.ErrGuildSettingsNotFound):
			s.logger.Warn("load guild settings", zap.String("guild_id", guildID), zap.Error(err))
		}
	}
	if l, err := domain.ParseLocale(userLocale); err == nil {
		return l
	}
	return s.defaultLocale
}

func (s *LocaleService) SetGuildLocale(ctx context.Context, guildID, raw string) (domain.Locale, error) {
	l, err := domain.ParseLocale(raw)
	if err != nil {
		return "", err
	}
	settings := &entities.GuildSettings{
		GuildID:   guildID,
		Locale:    string(l),
		UpdatedAt: time.Now(),
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return "", fmt.Errorf("upsert guild settings: %w", err)
	}
	return l, nil
}
