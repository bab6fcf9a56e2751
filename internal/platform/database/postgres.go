package database

import (
	"database/sql"
	"fmt"
	"realestate_crud/internal/platform/config"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// Connect opens a pooled connection to PostgreSQL and verifies it.
// The handle is returned to the caller; there is no package-level state.
func Connect() (*sql.DB, error) {
	db, err := sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		return nil, fmt.Errorf("database.Connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.Connect: ping: %w", err)
	}
	return db, nil
}

// Migrate creates the two tables if they are missing. Username uniqueness
// is enforced with a constraint so concurrent registration cannot slip a
// duplicate past the service-level existence check.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS properties (
			id BIGSERIAL PRIMARY KEY,
			address TEXT NOT NULL,
			price NUMERIC NOT NULL,
			size NUMERIC NOT NULL,
			description TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("database.Migrate: %w", err)
		}
	}
	return nil
}
