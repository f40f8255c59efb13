package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tellobot/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps the zero time to NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

type guildSettingsRow struct {
	GuildID   string
	Locale    string
	UpdatedAt pgtype.Timestamptz
}

func guildSettingsToDomain(r guildSettingsRow) entities.GuildSettings {
	return entities.GuildSettings{
		GuildID:   r.GuildID,
		Locale:    r.Locale,
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
