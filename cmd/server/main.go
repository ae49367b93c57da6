package main

import (
	"context"
	"database/sql"
	"fmt"
	"launch-dashboard-service/internal/adapters/cache"
	"launch-dashboard-service/internal/adapters/csvsource"
	"launch-dashboard-service/internal/adapters/repositories"
	"launch-dashboard-service/internal/api"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/platform/db"
	"launch-dashboard-service/internal/ports"
	"launch-dashboard-service/internal/render"
	"launch-dashboard-service/internal/services"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It loads the launch dataset once, wires the chart pipeline and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// The dataset is immutable once loaded; the source is not needed afterwards.
	ds, err := services.LoadDataset(ctx, repo)
	closeRepo()
	if err != nil {
		log.Fatal(err)
	}

	bounds := ds.PayloadBounds()
	log.Printf("Dataset loaded source=%s records=%d payload_min=%g payload_max=%g", cfg.DataSource, ds.Len(), bounds.Min, bounds.Max)
	log.Printf("Launch sites: %v", services.SiteOptions(ds))

	var chartCache ports.ChartCache
	if cfg.RedisAddr != "" {
		client, err := cache.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		chartCache = cache.NewRedisChartCache(client, cfg.ChartCacheTTL)
		log.Printf("Chart cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.ChartCacheTTL)
	}

	images := services.NewChartImages(ds, render.NewRenderer(cfg.ChartWidth, cfg.ChartHeight), chartCache)
	router := api.NewRouter(ds, images)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository selects the launch record source named by DATA_SOURCE.
func openRepository(cfg config.Config) (ports.LaunchRepository, func(), error) {
	switch cfg.DataSource {
	case config.SourceSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSqliteLaunchRepository(conn), closer(conn), nil
	case config.SourcePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLLaunchRepository(conn), closer(conn), nil
	case config.SourceCSV:
		return csvsource.NewCSVLaunchRepository(cfg.DataPath), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("open repository: unknown data source %q", cfg.DataSource)
	}
}

func closer(conn *sql.DB) func() {
	return func() {
		if err := conn.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}
}
