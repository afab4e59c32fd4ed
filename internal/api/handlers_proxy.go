package api

import (
	"encoding/json"
	"net/http"

	"github.com/daybook-labs/daybook/internal/api/respond"
	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/downstream"
)

// ProxyHandler relays helper-service calls through the downstream
// adapter, passing the adapter's status and body straight through.
type ProxyHandler struct {
	adapter *downstream.Adapter
	cfg     *config.Config
}

// NewProxyHandler creates a new proxy handler.
func NewProxyHandler(adapter *downstream.Adapter, cfg *config.Config) *ProxyHandler {
	return &ProxyHandler{adapter: adapter, cfg: cfg}
}

// WordCount handles POST /api/a/wordcount.
func (h *ProxyHandler) WordCount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	status, body := h.adapter.Call(r.Context(), http.MethodPost,
		h.cfg.WordcountURL+"/count-words", map[string]string{"text": req.Text})
	respond.WriteJSON(w, status, body)
}

// EncouragementList handles GET /api/b/list.
func (h *ProxyHandler) EncouragementList(w http.ResponseWriter, r *http.Request) {
	status, body := h.adapter.Call(r.Context(), http.MethodGet, h.cfg.EncouragementURL+"/list", nil)
	respond.WriteJSON(w, status, body)
}

// EncouragementRandom handles GET /api/b/random.
func (h *ProxyHandler) EncouragementRandom(w http.ResponseWriter, r *http.Request) {
	status, body := h.adapter.Call(r.Context(), http.MethodGet, h.cfg.EncouragementURL+"/random", nil)
	respond.WriteJSON(w, status, body)
}

// EntryCount handles GET /api/c/count.
func (h *ProxyHandler) EntryCount(w http.ResponseWriter, r *http.Request) {
	status, body := h.adapter.Call(r.Context(), http.MethodGet, h.cfg.CountURL+"/count", nil)
	respond.WriteJSON(w, status, body)
}

// EntryCountWithDate handles GET /api/c/count-with-date.
func (h *ProxyHandler) EntryCountWithDate(w http.ResponseWriter, r *http.Request) {
	status, body := h.adapter.Call(r.Context(), http.MethodGet, h.cfg.CountURL+"/count-with-date", nil)
	respond.WriteJSON(w, status, body)
}

// ExportCSV handles POST /api/d/export-csv. A 204 from the export
// service means there was nothing to export; the gateway reports that
// as a success note instead of relaying an empty body.
func (h *ProxyHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	status, body := h.adapter.Call(r.Context(), http.MethodPost, h.cfg.ExportURL+"/export/csv", nil)
	if status == http.StatusNoContent {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "note": "no entries"})
		return
	}
	respond.WriteJSON(w, status, body)
}
