package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/ports/output"
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

// DBTX is the subset of pgxpool.Pool (or pgx.Tx) the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getGuildSettings = `SELECT guild_id, locale, updated_at FROM guild_settings WHERE guild_id = $1`

	upsertGuildSettings = `INSERT INTO guild_settings (guild_id, locale, updated_at)
VALUES ($1, $2, COALESCE($3, now()))
ON CONFLICT (guild_id) DO UPDATE SET locale = EXCLUDED.locale, updated_at = EXCLUDED.updated_at
RETURNING updated_at`
)

// GuildSettingsRepository implements output.GuildSettingsRepository using pgx.
type GuildSettingsRepository struct {
	db DBTX
}

// NewGuildSettingsRepository creates a GuildSettingsRepository.
func NewGuildSettingsRepository(db DBTX) *GuildSettingsRepository {
	return &GuildSettingsRepository{db: db}
}

func (r *GuildSettingsRepository) FindByGuildID(ctx context.Context, guildID string) (*entities.GuildSettings, error) {
	var row guildSettingsRow
	err := r.db.QueryRow(ctx, getGuildSettings, guildID).Scan(&row.GuildID, &row.Locale, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGuildSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get guild settings: %w", err)
	}
	s := guildSettingsToDomain(row)
	return &s, nil
}

func (r *GuildSettingsRepository) Upsert(ctx context.Context, settings *entities.GuildSettings) error {
	var updatedAt = timeToPgtypeTimestamptz(settings.UpdatedAt)
	err := r.db.QueryRow(ctx, upsertGuildSettings, settings.GuildID, settings.Locale, updatedAt).Scan(&updatedAt)
	if err != nil {
		return fmt.Errorf("upsert guild settings: %w", err)
	}
	settings.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}
