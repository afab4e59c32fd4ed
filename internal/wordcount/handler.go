// Package wordcount implements the word-counting helper service.
package wordcount

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/daybook-labs/daybook/internal/api/recovery"
	"github.com/daybook-labs/daybook/internal/api/respond"
)

// Count reports the number of whitespace-separated words in text.
func Count(text string) int {
	return len(strings.Fields(text))
}

// Handler handles word-count HTTP requests.
type Handler struct{}

// NewHandler creates a new word-count handler.
func NewHandler() *Handler {
	return &Handler{}
}

// CountWords handles POST /count-words.
func (h *Handler) CountWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	respond.WriteJSON(w, http.StatusOK, map[string]int{"count": Count(req.Text)})
}

// NewRouter wires the word-count service routes.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	router.HandleFunc("/count-words", NewHandler().CountWords).Methods("POST")
	return router
}
