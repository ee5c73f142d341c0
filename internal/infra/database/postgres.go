package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// OpenPostgres opens and pings a Postgres connection with pool settings
// suited for a small request/response service.
func OpenPostgres(host, port, user, password, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// InitSchema creates the PostGIS extension and the users/locations tables.
// The location column is geography so distance predicates work in meters,
// and the owner reference is cleared (not cascaded) when a user is deleted.
func InitSchema(db *sql.DB) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS postgis;`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE
		);`,

		`CREATE TABLE IF NOT EXISTS locations (
			id UUID PRIMARY KEY,
			location GEOGRAPHY(POINT, 4326) NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			owner_id UUID REFERENCES users (id) ON DELETE SET NULL
		);`,

		`CREATE INDEX IF NOT EXISTS idx_locations_location ON locations USING GIST (location);`,

		`CREATE INDEX IF NOT EXISTS idx_locations_recorded_at ON locations (recorded_at DESC);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query '%s': %w", query, err)
		}
	}

	return nil
}
