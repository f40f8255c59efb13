package output

import (
	"context"

	"tellobot/internal/domain/entities"
)

type GuildSettingsRepository interface {
	// FindByGuildID returns domain.ErrGuildSettingsNotFound when the guild has no settings.
	FindByGuildID(ctx context.Context, guildID string) (*entities.GuildSettings, error)
	Upsert(ctx context.Context, settings *entities.GuildSettings) error
}
