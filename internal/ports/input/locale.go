package input

import (
	"context"

	"tellobot/internal/domain"
)

type LocaleUseCase interface {
	LocaleFor(ctx context.Context, guildID, userLocale string) domain.Locale
	SetGuildLocale(ctx context.Context, guildID, raw string) (domain.Locale, error)
}
