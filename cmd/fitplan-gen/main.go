package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/export"
	"github.com/meltforce/fitplan/internal/localstore"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
	"github.com/meltforce/fitplan/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// localUser is the only user of the offline store.
const localUser = 1

func main() {
	goal := flag.String("goal", "", "training goal: muscleGain, endurance or weightLoss (empty reuses the saved profile)")
	level := flag.String("level", "", "experience level: beginner, intermediate or advanced")
	days := flag.Int("days", 3, "training days per week (1-6)")
	equipment := flag.String("equipment", "", "comma-separated equipment tags, e.g. dumbbells,bench")
	minutes := flag.Int("minutes", 0, "time budget per session in minutes for timed exercises (0 = none)")
	strategy := flag.String("strategy", "", "exercise source: catalog or fixed (default catalog)")
	seed := flag.Uint64("seed", 0, "random seed for a reproducible plan (0 = random)")
	catalogPath := flag.String("catalog", "", "exercise catalog YAML file (default: built-in catalog)")
	xlsxPath := flag.String("xlsx", "", "also write the plan as an .xlsx workbook to this path")
	stateDir := flag.String("state", "", "directory for the local plan history (default ~/.fitplan)")
	noSave := flag.Bool("no-save", false, "print the plan without storing profile or history")
	history := flag.Bool("history", false, "list stored plans and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitplan-gen", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	src, err := catalogSource(*catalogPath)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	var req planning.GenerateRequest
	req.Strategy = *strategy
	if *seed != 0 {
		req.Seed = seed
	}

	var flagProfile *models.UserProfile
	if *goal != "" {
		p := models.UserProfile{
			Goal:               models.Goal(*goal),
			ExperienceLevel:    models.ExperienceLevel(*level),
			AvailableEquipment: splitList(*equipment),
			DaysPerWeek:        *days,
		}
		if *minutes > 0 {
			p.AvailableTimeMinutes = minutes
		}
		flagProfile = &p
	}

	var plan *models.WorkoutPlan
	if *noSave {
		if flagProfile == nil {
			fmt.Fprintln(os.Stderr, "Error: -no-save needs a profile (-goal, -level, -days)")
			os.Exit(1)
		}
		svc := planning.New(nil, nil, src, planning.Options{}, log)
		plan, err = svc.Preview(*flagProfile, req)
		if err != nil {
			log.Error("generation failed", "error", err)
			os.Exit(1)
		}
	} else {
		dir, err := resolveStateDir(*stateDir)
		if err != nil {
			log.Error("failed to resolve state dir", "error", err)
			os.Exit(1)
		}
		store, err := localstore.Open(dir)
		if err != nil {
			log.Error("failed to open local store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		svc := planning.New(store, store, src, planning.Options{}, log)

		if *history {
			hist, err := svc.History(ctx, localUser, 0)
			if err != nil {
				log.Error("failed to read history", "error", err)
				os.Exit(1)
			}
			printJSON(hist)
			return
		}

		if flagProfile != nil {
			if err := svc.SaveProfile(ctx, localUser, *flagProfile); err != nil {
				log.Error("invalid profile", "error", err)
				os.Exit(1)
			}
		}
		plan, err = svc.Generate(ctx, localUser, req)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Error: no saved profile; pass -goal, -level and -days")
			os.Exit(1)
		}
		if err != nil {
			log.Error("generation failed", "error", err)
			os.Exit(1)
		}
	}

	if *xlsxPath != "" {
		if err := writeXLSX(*xlsxPath, plan); err != nil {
			log.Error("failed to write workbook", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		log.Info("workbook written", "path", *xlsxPath)
	}
	printJSON(plan)
}

func catalogSource(path string) (catalog.Source, error) {
	if path == "" {
		return catalog.NewStatic(catalog.Default()), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.NewStatic(c), nil
}

func resolveStateDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fitplan"), nil
}

func writeXLSX(path string, plan *models.WorkoutPlan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WritePlan(f, plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
