package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/storage"
)

// maxCatalogBytes caps the size of an uploaded catalog file.
const maxCatalogBytes = 4 << 20

// CatalogImportResult is returned by POST /api/v1/catalog/import.
type CatalogImportResult struct {
	ImportID          int64 `json:"import_id"`
	ExercisesReceived int   `json:"exercises_received"`
	ExercisesWritten  int64 `json:"exercises_written"`
	CatalogSize       int   `json:"catalog_size"`
}

func (s *Server) handleCatalogImport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	source := r.URL.Query().Get("source")
	if source == "" {
		source = "api"
	}

	entry := storage.CatalogImport{Source: source, Status: "running"}
	id, err := s.store.InsertCatalogImport(r.Context(), entry)
	if err != nil {
		s.log.Error("failed to start import log", "error", err)
	}

	defs, err := catalog.Parse(http.MaxBytesReader(w, r.Body, maxCatalogBytes))
	if err != nil {
		s.finishImport(id, entry, start, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry.ExercisesReceived = len(defs)
	if len(defs) == 0 {
		err := errors.New("catalog contains no exercises")
		s.finishImport(id, entry, start, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := catalog.New(defs)
	if err != nil {
		s.finishImport(id, entry, start, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	written, err := s.store.UpsertExercises(r.Context(), cat.All())
	entry.ExercisesWritten = written
	if err != nil {
		s.finishImport(id, entry, start, err)
		s.log.Error("catalog import failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.finishImport(id, entry, start, nil)

	if s.publish != nil {
		s.publish(cat)
	}
	s.log.Info("catalog imported", "source", source, "exercises", cat.Len(), "written", written)

	writeJSON(w, http.StatusOK, CatalogImportResult{
		ImportID:          id,
		ExercisesReceived: entry.ExercisesReceived,
		ExercisesWritten:  written,
		CatalogSize:       cat.Len(),
	})
}

func (s *Server) handleCatalogImports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	logs, err := s.store.QueryCatalogImports(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if logs == nil {
		logs = []storage.CatalogImport{}
	}
	writeJSON(w, http.StatusOK, logs)
}

// finishImport moves the import log entry from "running" to its final status.
// It runs on a fresh context so a cancelled request still gets logged.
func (s *Server) finishImport(id int64, entry storage.CatalogImport, start time.Time, importErr error) {
	if id == 0 {
		return
	}
	entry.Status = "success"
	if importErr != nil {
		entry.Status = "error"
		msg := importErr.Error()
		entry.ErrorMessage = &msg
	}
	ms := int(time.Since(start).Milliseconds())
	entry.DurationMs = &ms

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:mnd
	defer cancel()
	if err := s.store.UpdateCatalogImport(ctx, id, entry); err != nil {
		s.log.Error("failed to log import", "source", entry.Source, "error", err)
	}
}
