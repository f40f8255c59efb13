package entities

import "time"

// GuildSettings is the per-guild preference of the Discord host.
type GuildSettings struct {
	GuildID   string
	Locale    string
	UpdatedAt time.Time
}
