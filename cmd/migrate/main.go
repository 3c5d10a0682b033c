package main

import (
	"errors"
	"flag"
	stdlog "log"

	"github.com/golang-migrate/migrate"
	_ "github.com/golang-migrate/migrate/database/postgres"
	_ "github.com/golang-migrate/migrate/source/file"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/pkg/config"
	"github.com/noah-isme/alumni-mentorship-api/pkg/database"
	"github.com/noah-isme/alumni-mentorship-api/pkg/logger"
)

func main() {
	var migrationPath string
	var down bool

	flag.StringVar(&migrationPath, "migration_path", "", "Path to the migration files (defaults to MIGRATIONS_PATH)")
	flag.BoolVar(&down, "down", false, "Roll back every migration instead of applying")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		stdlog.Fatalf("failed to init logger: %v", err)
	}
	defer log.Sync() //nolint:errcheck

	if migrationPath == "" {
		migrationPath = cfg.Migrations.Path
	}

	migration, err := migrate.New("file://"+migrationPath, database.URL(cfg.Database))
	if err != nil {
		log.Fatal("failed to create migration", zap.Error(err))
	}

	if down {
		err = migration.Down()
	} else {
		err = migration.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("failed to run migration", zap.Error(err), zap.Bool("down", down))
	}

	log.Info("successfully migrated", zap.String("path", migrationPath), zap.Bool("down", down))
}
