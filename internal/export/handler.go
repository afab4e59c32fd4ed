package export

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/daybook-labs/daybook/internal/api/recovery"
	"github.com/daybook-labs/daybook/internal/api/respond"
	"github.com/daybook-labs/daybook/internal/store"
)

// Handler handles export HTTP requests.
type Handler struct {
	store     store.EntryStore
	exportDir string
}

// NewHandler creates a handler exporting from the given store into
// exportDir.
func NewHandler(s store.EntryStore, exportDir string) *Handler {
	return &Handler{store: s, exportDir: exportDir}
}

// ExportCSV handles POST /export/csv. With no entries stored it
// answers 204 and writes nothing.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("export scan failed")
		respond.WriteCode(w, http.StatusInternalServerError, "export_failed")
		return
	}
	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	path, err := WriteCSV(h.exportDir, entries)
	if err != nil {
		log.Error().Err(err).Msg("export write failed")
		respond.WriteCode(w, http.StatusInternalServerError, "export_failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"format": "csv", "path": path})
}

// NewRouter wires the export service routes.
func NewRouter(s store.EntryStore, exportDir string) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	router.HandleFunc("/export/csv", NewHandler(s, exportDir).ExportCSV).Methods("POST")
	return router
}
