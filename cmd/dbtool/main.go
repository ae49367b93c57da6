package main

import (
	"context"
	"launch-dashboard-service/internal/adapters/csvsource"
	"launch-dashboard-service/internal/adapters/repositories"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/db"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool imports the launch records CSV into the SQL database used by
// DATA_SOURCE=sqlite or DATA_SOURCE=postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx := context.Background()

	dataPath := config.Get("DATA_PATH", "data/spacex_launch_dash.csv")
	records, err := csvsource.NewCSVLaunchRepository(dataPath).ListLaunches(ctx)
	if err != nil {
		log.Fatal(err)
	}
	// Validate before touching the database.
	if _, err := domain.NewDataset(records); err != nil {
		log.Fatal(err)
	}

	if config.Get("DATA_SOURCE", config.SourcePostgres) == config.SourceSQLite {
		importSQLite(ctx, config.Get("DB_PATH", "data/app.db"), records)
		return
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	importPostgres(ctx, databaseURL, records)
}

func importSQLite(ctx context.Context, dbPath string, records []domain.LaunchRecord) {
	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing sqlite schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Importing %d launches...", len(records))
	if err := repositories.SeedLaunches(ctx, conn, records); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Println("Import complete.")
}

func importPostgres(ctx context.Context, databaseURL string, records []domain.LaunchRecord) {
	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing postgres schema...")
	if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Importing %d launches...", len(records))
	if err := repositories.SeedPostgresLaunches(ctx, conn, records); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Println("Import complete.")
}
