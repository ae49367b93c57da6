package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
)

// Postgres-backed implementation of the LaunchRepository port.
type SQLLaunchRepository struct{ DB *sql.DB }

func NewSQLLaunchRepository(db *sql.DB) *SQLLaunchRepository {
	return &SQLLaunchRepository{DB: db}
}

func (s *SQLLaunchRepository) ListLaunches(ctx context.Context) (_ []domain.LaunchRecord, err error) {
	defer obs.Time(ctx, "postgres.ListLaunches")(&err)

	if s.DB == nil {
		return nil, errors.New("sql launch repository: DB is nil")
	}

	return listLaunches(ctx, s.DB)
}

// Initialize the Postgres database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS launches (
		flight_number INTEGER PRIMARY KEY,
		launch_site TEXT NOT NULL,
		class SMALLINT NOT NULL CHECK (class IN (0, 1)),
		payload_mass_kg DOUBLE PRECISION NOT NULL,
		booster_version TEXT NOT NULL DEFAULT '',
		booster_version_category TEXT NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_launches_site
	ON launches(launch_site);
	`,
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

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

// Upsert launch records into Postgres keyed by flight number.
func SeedPostgresLaunches(ctx context.Context, db *sql.DB, records []domain.LaunchRecord) error {
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

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO launches (
		flight_number,
		launch_site,
		class,
		payload_mass_kg,
		booster_version,
		booster_version_category
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (flight_number) DO UPDATE
	SET launch_site = EXCLUDED.launch_site,
		class = EXCLUDED.class,
		payload_mass_kg = EXCLUDED.payload_mass_kg,
		booster_version = EXCLUDED.booster_version,
		booster_version_category = EXCLUDED.booster_version_category;
	`)
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
