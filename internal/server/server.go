package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
	"github.com/meltforce/fitplan/internal/storage"
)

// Store is the storage the HTTP layer uses directly. *storage.DB satisfies it.
type Store interface {
	UserStore
	UpsertExercises(ctx context.Context, defs []models.ExerciseDefinition) (int64, error)
	InsertCatalogImport(ctx context.Context, l storage.CatalogImport) (int64, error)
	UpdateCatalogImport(ctx context.Context, id int64, l storage.CatalogImport) error
	QueryCatalogImports(ctx context.Context, limit int) ([]storage.CatalogImport, error)
	Ping(ctx context.Context) error
}

var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	plans    *planning.Service
	store    Store
	log      *slog.Logger
	apiKey   string
	identity func(http.Handler) http.Handler
	mcp      http.Handler
	publish  func(*catalog.Catalog)

	once   sync.Once
	router chi.Router
}

// New creates a new Server. Routes are built on first use so that
// SetTailscale and MountMCP can still be called after New.
func New(plans *planning.Service, store Store, apiKey string, log *slog.Logger) *Server {
	return &Server{
		plans:    plans,
		store:    store,
		log:      log,
		apiKey:   apiKey,
		identity: DevIdentity,
	}
}

// SetTailscale switches identity resolution from the dev user to Tailscale
// WhoIs lookups.
func (s *Server) SetTailscale(lc WhoIser) {
	s.identity = TailscaleIdentity(lc, s.store, s.log)
}

// MountMCP serves an MCP handler at /mcp behind the identity middleware.
func (s *Server) MountMCP(h http.Handler) {
	s.mcp = h
}

// SetCatalogPublisher registers a callback that receives the new catalog
// after a successful import.
func (s *Server) SetCatalogPublisher(fn func(*catalog.Catalog)) {
	s.publish = fn
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.once.Do(s.routes)
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(RequestLogging(s.log))
	r.Use(CORS)

	r.Get("/healthz", s.handleHealth)

	// Catalog import (API key required)
	r.With(APIKeyAuth(s.apiKey)).Post("/api/v1/catalog/import", s.handleCatalogImport)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.identity)

		r.Get("/me", s.handleMe)
		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)

		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Get("/templates", s.handleTemplates)
		r.Get("/catalog/imports", s.handleCatalogImports)

		r.Post("/plans", s.handleGeneratePlan)
		r.Get("/plans/current", s.handleCurrentPlan)
		r.Get("/plans/current/export", s.handleExportCurrentPlan)
		r.Get("/plans/history", s.handlePlanHistory)
		r.Get("/plans/{id}", s.handleGetPlan)
	})

	if s.mcp != nil {
		r.With(s.identity).Handle("/mcp", s.mcp)
	}

	s.router = r
}
