package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
)

// SQLite-backed implementation of the LaunchRepository port.
type SqliteLaunchRepository struct{ DB *sql.DB }

func NewSqliteLaunchRepository(db *sql.DB) *SqliteLaunchRepository {
	return &SqliteLaunchRepository{DB: db}
}

// Return all launches stored in the database, ordered by flight number.
func (s *SqliteLaunchRepository) ListLaunches(ctx context.Context) (_ []domain.LaunchRecord, err error) {
	defer obs.Time(ctx, "sqlite.ListLaunches")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite launch repository: DB is nil")
	}

	return listLaunches(ctx, s.DB)
}

// listLaunches is shared by the SQLite and Postgres repositories; the query
// uses no placeholders so it runs unchanged on both.
func listLaunches(ctx context.Context, db *sql.DB) ([]domain.LaunchRecord, error) {
	query := `
	SELECT
		flight_number,
		launch_site,
		class,
		payload_mass_kg,
		booster_version,
		booster_version_category
	FROM launches
	ORDER BY flight_number;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list launches: query launches table: %w", err)
	}
	defer rows.Close()

	launches := make([]domain.LaunchRecord, 0, 64)
	for rows.Next() {
		var r domain.LaunchRecord
		err := rows.Scan(
			&r.FlightNumber,
			&r.LaunchSite,
			&r.Class,
			&r.PayloadMassKg,
			&r.BoosterVersion,
			&r.BoosterVersionCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("list launches: scan row: %w", err)
		}
		launches = append(launches, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list launches: row iteration: %w", err)
	}

	return launches, nil
}
