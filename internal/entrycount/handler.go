// Package entrycount implements the entry-counting helper service.
// It counts record files directly rather than going through the
// gateway, so it stays stateless and independently deployable.
package entrycount

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/daybook-labs/daybook/internal/api/recovery"
	"github.com/daybook-labs/daybook/internal/api/respond"
)

// Handler handles entry-count HTTP requests.
type Handler struct {
	dataDir string
}

// NewHandler creates a handler counting entries under dataDir.
func NewHandler(dataDir string) *Handler {
	return &Handler{dataDir: dataDir}
}

// count tallies regular .json files; a missing directory counts zero.
func (h *Handler) count() int {
	dirents, err := os.ReadDir(h.dataDir)
	if err != nil {
		return 0
	}
	n := 0
	for _, de := range dirents {
		if de.Type().IsRegular() && strings.HasSuffix(de.Name(), ".json") {
			n++
		}
	}
	return n
}

// Count handles GET /count.
func (h *Handler) Count(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]int{"count": h.count()})
}

// CountWithDate handles GET /count-with-date.
func (h *Handler) CountWithDate(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count": h.count(),
		"date":  time.Now().UTC().Format("2006-01-02"),
	})
}

// NewRouter wires the entry-count service routes.
func NewRouter(dataDir string) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	h := NewHandler(dataDir)
	router.HandleFunc("/count", h.Count).Methods("GET")
	router.HandleFunc("/count-with-date", h.CountWithDate).Methods("GET")
	return router
}
