package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"launch-dashboard-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLaunchesQuery := `
	CREATE TABLE IF NOT EXISTS launches (
		flight_number INTEGER PRIMARY KEY,
		launch_site TEXT NOT NULL,
		class INTEGER NOT NULL CHECK (class IN (0, 1)),
		payload_mass_kg REAL NOT NULL,
		booster_version TEXT NOT NULL DEFAULT '',
		booster_version_category TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_launches_site
	ON launches(launch_site);
	`

	statements := []string{
		createLaunchesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the launches table, replacing rows that share a flight number.
func SeedLaunches(ctx context.Context, db *sql.DB, records []domain.LaunchRecord) error {
	if db == nil {
		return errors.New("seed launches: DB is nil")
	}

	if err := validateSeed(records); err != nil {
		return fmt.Errorf("seed launches: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed launches: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO launches (
		flight_number,
		launch_site,
		class,
		payload_mass_kg,
		booster_version,
		booster_version_category
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed launches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.FlightNumber,
			r.LaunchSite,
			r.Class,
			r.PayloadMassKg,
			r.BoosterVersion,
			r.BoosterVersionCategory,
		); err != nil {
			return fmt.Errorf("seed launches: insert flight_number=%d: %w", r.FlightNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed launches: commit tx: %w", err)
	}

	return nil
}

func validateSeed(records []domain.LaunchRecord) error {
	for i, r := range records {
		if r.FlightNumber <= 0 {
			return fmt.Errorf("invalid flight number at index %d: %d", i+1, r.FlightNumber)
		}
		if r.LaunchSite == "" {
			return fmt.Errorf("record at index %d: launch site cannot be empty", i+1)
		}
	}
	return nil
}
