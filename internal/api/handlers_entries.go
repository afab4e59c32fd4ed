package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/daybook-labs/daybook/internal/api/respond"
	"github.com/daybook-labs/daybook/internal/model"
	"github.com/daybook-labs/daybook/internal/store"
)

const (
	listLimit    = 100
	previewChars = 80
)

// EntryHandler handles entry-related HTTP requests (thin transport layer).
type EntryHandler struct {
	store store.EntryStore
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(s store.EntryStore) *EntryHandler {
	return &EntryHandler{store: s}
}

// CreateEntry handles POST /api/entries/create.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text          string `json:"text"`
		Encouragement string `json:"encouragement"`
		Date          string `json:"date"`
		Time          string `json:"time"`
	}
	// A missing or malformed body is treated the same as an empty one;
	// the store rejects it as an empty entry.
	_ = json.NewDecoder(r.Body).Decode(&req)

	e, err := h.store.Create(r.Context(), model.CreateEntryRequest{
		Text:          req.Text,
		Encouragement: req.Encouragement,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"id":   e.ID,
		"path": h.store.Path(e.ID),
	})
}

// ListEntries handles GET /api/entries/list. The count reflects every
// stored entry; items carry at most the 100 most recent previews.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context())
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	items := make([]model.EntryPreview, 0, listLimit)
	for _, e := range entries {
		if len(items) == listLimit {
			break
		}
		items = append(items, model.EntryPreview{
			ID:      e.ID,
			Date:    e.Date,
			Time:    e.Time,
			Preview: preview(e),
		})
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(entries),
		"items": items,
	})
}

// GetEntry handles GET /api/entries/get?id=.
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	e, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "entry": e})
}

// UpdateEntry handles POST /api/entries/update. Fields absent from the
// request are left alone; text/encouragement supplied blank are
// cleared.
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID            string  `json:"id"`
		Text          *string `json:"text"`
		Encouragement *string `json:"encouragement"`
		Date          *string `json:"date"`
		Time          *string `json:"time"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	id := strings.TrimSpace(req.ID)
	if id == "" {
		respond.WriteCode(w, http.StatusBadRequest, "missing_id")
		return
	}

	e, err := h.store.Update(r.Context(), id, model.UpdateEntryRequest{
		Text:          req.Text,
		Encouragement: req.Encouragement,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "entry": e})
}

// DeleteEntry handles POST /api/entries/delete.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	id := strings.TrimSpace(req.ID)
	if id == "" {
		respond.WriteCode(w, http.StatusBadRequest, "missing_id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "id": id})
}

// writeStoreError maps store errors onto the gateway's error codes.
// Unexpected I/O faults surface as the generic internal code rather
// than leaking implementation detail.
func (h *EntryHandler) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmptyEntry):
		respond.WriteCode(w, http.StatusBadRequest, "empty_entry")
	case errors.Is(err, model.ErrInvalidDateFormat):
		respond.WriteCode(w, http.StatusBadRequest, "invalid_date_format")
	case errors.Is(err, model.ErrInvalidTimeFormat):
		respond.WriteCode(w, http.StatusBadRequest, "invalid_time_format")
	case errors.Is(err, model.ErrEntryCannotBeEmpty):
		respond.WriteCode(w, http.StatusBadRequest, "entry_cannot_be_empty")
	case errors.Is(err, model.ErrNotFound):
		respond.WriteCode(w, http.StatusNotFound, "not_found")
	case errors.Is(err, model.ErrDeleteFailed):
		respond.WriteCode(w, http.StatusInternalServerError, "delete_failed")
	default:
		log.Error().Err(err).Msg("entry store failure")
		respond.WriteCode(w, http.StatusInternalServerError, "internal_error")
	}
}

// preview reduces an entry to the first 80 characters of its text,
// falling back to the encouragement.
func preview(e *model.Entry) string {
	s := e.Text
	if s == "" {
		s = e.Encouragement
	}
	if r := []rune(s); len(r) > previewChars {
		s = string(r[:previewChars])
	}
	return s
}
