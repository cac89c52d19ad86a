package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Миграционной системы нет: схема создаётся при старте, если таблиц ещё нет.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		username      TEXT,
		password_hash TEXT,
		role          TEXT NOT NULL DEFAULT 'player',
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		balance       DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_fixed      BOOLEAN NOT NULL DEFAULT FALSE,
		previous_rank INTEGER NOT NULL DEFAULT 0,
		CONSTRAINT players_name_key UNIQUE (name),
		CONSTRAINT players_username_key UNIQUE (username)
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id               SERIAL PRIMARY KEY,
		date             DATE NOT NULL,
		result           TEXT,
		is_double_points BOOLEAN NOT NULL DEFAULT FALSE,
		status           TEXT NOT NULL DEFAULT 'completed',
		time             TEXT,
		location         TEXT,
		opponent         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS match_players (
		match_id  INTEGER NOT NULL REFERENCES matches (id),
		player_id INTEGER NOT NULL REFERENCES players (id),
		team      TEXT NOT NULL,
		PRIMARY KEY (match_id, player_id)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id        SERIAL PRIMARY KEY,
		match_id  INTEGER NOT NULL REFERENCES matches (id) ON DELETE CASCADE,
		player_id INTEGER NOT NULL REFERENCES players (id),
		status    TEXT NOT NULL,
		CONSTRAINT attendance_match_player_key UNIQUE (match_id, player_id)
	)`,
	`CREATE TABLE IF NOT EXISTS champions (
		id     SERIAL PRIMARY KEY,
		name   TEXT NOT NULL,
		titles INTEGER NOT NULL DEFAULT 1,
		CONSTRAINT champions_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS season_archive (
		id          SERIAL PRIMARY KEY,
		season_name TEXT NOT NULL,
		data_json   TEXT NOT NULL,
		date        DATE NOT NULL
	)`,
}

// EnsureSchema создаёт недостающие таблицы.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
