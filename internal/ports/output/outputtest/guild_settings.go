package outputtest

import (
	"context"
	"sync"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/ports/output"
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

// GuildSettingsRepository is a map-backed output.GuildSettingsRepository.
// Err, when set, is returned by every call.
type GuildSettingsRepository struct {
	mu       sync.Mutex
	settings map[string]entities.GuildSettings
	Err      error
}

func NewGuildSettingsRepository() *GuildSettingsRepository {
	return &GuildSettingsRepository{settings: map[string]entities.GuildSettings{}}
}

func (r *GuildSettingsRepository) FindByGuildID(_ context.Context, guildID string) (*entities.GuildSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	s, ok := r.settings[guildID]
	if !ok {
		return nil, domain.ErrGuildSettingsNotFound
	}
	return &s, nil
}

func (r *GuildSettingsRepository) Upsert(_ context.Context, settings *entities.GuildSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.settings[settings.GuildID] = *settings
	return nil
}
