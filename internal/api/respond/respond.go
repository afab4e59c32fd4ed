// Package respond writes the gateway's JSON envelopes.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorBody is the uniform failure envelope: ok=false plus a
// machine-readable code.
type errorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// WriteJSON writes data as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteCode writes the failure envelope for a machine-readable code.
func WriteCode(w http.ResponseWriter, statusCode int, code string) {
	WriteJSON(w, statusCode, errorBody{Error: code})
}
