package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/config"
	fitmcp "github.com/meltforce/fitplan/internal/mcp"
	"github.com/meltforce/fitplan/internal/planning"
	"github.com/meltforce/fitplan/internal/server"
	"github.com/meltforce/fitplan/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("fitplan starting", "version", Version)

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
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	if !cfg.Tailscale.Enabled {
		// Dev identity maps every request to user 1; make sure the row exists.
		uid, err := db.GetOrCreateUser(ctx, "local", "Local Dev User")
		if err != nil {
			log.Error("failed to create dev user", "error", err)
			os.Exit(1)
		}
		if uid != 1 {
			log.Warn("dev user does not have id 1, requests will fail foreign key checks", "user_id", uid)
		}
	}

	src, publish, err := catalogSource(ctx, cfg.Catalog, db, log)
	if err != nil {
		log.Error("failed to load exercise catalog", "error", err)
		os.Exit(1)
	}

	plans := planning.New(db, db, src, planning.Options{
		DefaultStrategy: cfg.Generation.Strategy,
		Seed:            cfg.Generation.Seed,
	}, log)

	retention := planning.NewRetention(db, cfg.History.RetentionDays, log)
	pruner, err := retention.Schedule(ctx, cfg.History.PruneSchedule)
	if err != nil {
		log.Error("failed to schedule history pruning", "error", err)
		os.Exit(1)
	}
	if pruner != nil {
		defer pruner.Stop()
	}

	srv := server.New(plans, db, cfg.Auth.APIKey, log)
	if publish != nil {
		srv.SetCatalogPublisher(publish)
	}

	mcpSrv := fitmcp.New(fitmcp.NewLocal(plans), Version, log)
	srv.MountMCP(mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			return fitmcp.WithUserID(ctx, server.RequestUserID(r))
		}),
	))

	// Listen on the tailnet or on a plain TCP address.
	var listener net.Listener
	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// catalogSource picks where exercises come from. A configured file wins and
// is authoritative, so API imports only reach the database. Otherwise the
// exercises table is used, falling back to the built-in catalog, and API
// imports replace the live snapshot.
func catalogSource(ctx context.Context, cfg config.CatalogConfig, db *storage.DB, log *slog.Logger) (catalog.Source, func(*catalog.Catalog), error) {
	if cfg.Path != "" {
		w, err := catalog.NewFileWatcher(cfg.Path, log)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Watch {
			go func() {
				if err := w.Run(ctx); err != nil {
					log.Error("catalog watcher stopped", "error", err)
				}
			}()
		}
		log.Info("catalog loaded from file", "path", cfg.Path, "exercises", w.Snapshot().Len())
		return w, nil, nil
	}

	defs, err := db.ListExercises(ctx)
	if err != nil {
		return nil, nil, err
	}
	c := catalog.Default()
	if len(defs) > 0 {
		if c, err = catalog.New(defs); err != nil {
			return nil, nil, fmt.Errorf("exercises table: %w", err)
		}
		log.Info("catalog loaded from database", "exercises", c.Len())
	} else {
		log.Info("catalog table empty, using built-in catalog", "exercises", c.Len())
	}

	dyn := catalog.NewDynamic(c)
	return dyn, dyn.Publish, nil
}
