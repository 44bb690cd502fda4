package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/config"
	"github.com/meltforce/fitplan/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	catalogPath := flag.String("path", "", "path to catalog YAML file (required, or 'builtin')")
	dryRun := flag.Bool("dry-run", false, "validate the catalog without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *catalogPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: fitplan-import -config config.yaml -path catalog.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	start := time.Now()
	cat, err := load(*catalogPath)
	if err != nil {
		log.Error("invalid catalog", "path", *catalogPath, "error", err)
		os.Exit(1)
	}
	log.Info("catalog parsed", "path", *catalogPath, "exercises", cat.Len())

	if *dryRun {
		log.Info("dry run, nothing written")
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("failed to read .env", "error", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	entry := storage.CatalogImport{Source: "cli", Status: "running", ExercisesReceived: cat.Len()}
	id, err := db.InsertCatalogImport(ctx, entry)
	if err != nil {
		log.Warn("failed to start import log", "error", err)
	}

	written, importErr := db.UpsertExercises(ctx, cat.All())
	entry.ExercisesWritten = written
	entry.Status = "success"
	if importErr != nil {
		entry.Status = "error"
		msg := importErr.Error()
		entry.ErrorMessage = &msg
	}
	ms := int(time.Since(start).Milliseconds())
	entry.DurationMs = &ms

	if id != 0 {
		if err := db.UpdateCatalogImport(ctx, id, entry); err != nil {
			log.Warn("failed to finish import log", "error", err)
		}
	}

	if importErr != nil {
		log.Error("import failed", "error", importErr)
		os.Exit(1)
	}
	log.Info("import complete", "exercises_written", written, "duration_ms", ms)
}

func load(path string) (*catalog.Catalog, error) {
	if path == "builtin" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
