package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	"github.com/leaseflow/leaseflow/internal/config"
	"github.com/leaseflow/leaseflow/internal/logger"
	_ "github.com/lib/pq"
)

//go:embed migrations
var migrationFS embed.FS

func main() {
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	names, statements, err := loadMigrations()
	if err != nil {
		logger.Fatalw("Failed to load migrations", "error", err)
	}

	if *dryRun {
		for i, stmt := range statements {
			fmt.Printf("-- %s\n%s\n", names[i], stmt)
		}
		return
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	db, err := sqlx.Open("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// The database may still be starting, e.g. under docker compose
	pingBackoff := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(func() error { return db.PingContext(ctx) }, pingBackoff); err != nil {
		logger.Fatalw("Database did not become ready", "error", err)
	}

	logger.Info("Running database migrations...")
	for i, stmt := range statements {
		logger.Infow("Applying migration", "name", names[i])
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Fatalw("Failed to apply migration", "name", names[i], "error", err)
		}
	}
	logger.Info("Migration completed successfully")
}

func loadMigrations() ([]string, []string, error) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	statements := make([]string, 0, len(names))
	for _, name := range names {
		content, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, nil, err
		}
		statements = append(statements, string(content))
	}
	return names, statements, nil
}
