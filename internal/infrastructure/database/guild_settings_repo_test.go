package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *pgtype.Timestamptz:
			*p = r.values[i].(pgtype.Timestamptz)
		}
	}
	return nil
}

type fakeDB struct {
	row   fakeRow
	query string
	args  []any
}

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.query = sql
	db.args = args
	return db.row
}

func TestFindByGuildID(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{"42", "ja", pgtype.Timestamptz{Time: now, Valid: true}}}}
	repo := NewGuildSettingsRepository(db)

	s, err := repo.FindByGuildID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, &entities.GuildSettings{GuildID: "42", Locale: "ja", UpdatedAt: now}, s)
	assert.Equal(t, []any{"42"}, db.args)
}

func TestFindByGuildIDNotFound(t *testing.T) {
	repo := NewGuildSettingsRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	_, err := repo.FindByGuildID(context.Background(), "42")
	assert.True(t, errors.Is(err, domain.ErrGuildSettingsNotFound))
}

func TestFindByGuildIDFailure(t *testing.T) {
	boom := errors.New("boom")
	repo := NewGuildSettingsRepository(&fakeDB{row: fakeRow{err: boom}})

	_, err := repo.FindByGuildID(context.Background(), "42")
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, domain.ErrGuildSettingsNotFound))
}

func TestUpsert(t *testing.T) {
	stored := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{pgtype.Timestamptz{Time: stored, Valid: true}}}}
	repo := NewGuildSettingsRepository(db)

	s := &entities.GuildSettings{GuildID: "7", Locale: "ja-Hira"}
	require.NoError(t, repo.Upsert(context.Background(), s))

	assert.Equal(t, stored, s.UpdatedAt)
	require.Len(t, db.args, 3)
	assert.Equal(t, "7", db.args[0])
	assert.Equal(t, "ja-Hira", db.args[1])
	assert.Equal(t, pgtype.Timestamptz{}, db.args[2], "zero time is sent as NULL")
}
