// Package encouragement implements the encouragement helper service:
// a fixed list of short pep lines, served whole or one at random.
package encouragement

import (
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daybook-labs/daybook/internal/api/recovery"
	"github.com/daybook-labs/daybook/internal/api/respond"
)

// Encouragements is the fixed list served by this helper.
var Encouragements = []string{
	"You’ve got this.",
	"Small steps count.",
	"Keep going—progress over perfection.",
	"Be kind to yourself today.",
	"One page today is a chapter tomorrow.",
	"Breathe. Reset. Try again.",
	"Your effort matters.",
	"You’re doing better than you think.",
	"Focus on what you can control.",
	"Show up for yourself.",
}

// Handler handles encouragement HTTP requests.
type Handler struct{}

// NewHandler creates a new encouragement handler.
func NewHandler() *Handler {
	return &Handler{}
}

// List handles GET /list.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(Encouragements),
		"items": Encouragements,
	})
}

// Random handles GET /random.
func (h *Handler) Random(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"encouragement": Encouragements[rand.IntN(len(Encouragements))],
	})
}

// NewRouter wires the encouragement service routes.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	h := NewHandler()
	router.HandleFunc("/list", h.List).Methods("GET")
	router.HandleFunc("/random", h.Random).Methods("GET")
	return router
}
