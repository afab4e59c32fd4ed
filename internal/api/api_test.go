package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/store"
)

// newTestGateway builds a gateway over temp directories. mutate can
// point the helper URLs at fake backends before the router is wired.
func newTestGateway(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		DataDir:           t.TempDir(),
		ExportDir:         t.TempDir(),
		DownstreamTimeout: time.Second,
	}
	if mutate != nil {
		mutate(cfg)
	}
	entries, err := store.NewFileStore(cfg.DataDir)
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(entries, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp, decodeJSON(t, resp)
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp, decodeJSON(t, resp)
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestEntryLifecycle(t *testing.T) {
	srv := newTestGateway(t, nil)

	// create
	resp, body := postJSON(t, srv.URL+"/api/entries/create", map[string]string{
		"text": "first entry", "date": "2024-03-01", "time": "09:15",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEmpty(t, body["path"])

	// get
	resp, body = getJSON(t, srv.URL+"/api/entries/get?id="+id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := body["entry"].(map[string]interface{})
	assert.Equal(t, "first entry", entry["text"])
	assert.Equal(t, "2024-03-01", entry["date"])

	// update: change date only, text survives
	resp, body = postJSON(t, srv.URL+"/api/entries/update", map[string]string{
		"id": id, "date": "2024-03-05",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry = body["entry"].(map[string]interface{})
	assert.Equal(t, "2024-03-05", entry["date"])
	assert.Equal(t, "first entry", entry["text"])

	// delete
	resp, body = postJSON(t, srv.URL+"/api/entries/delete", map[string]string{"id": id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	// deleted ids behave as never-existing
	resp, body = getJSON(t, srv.URL+"/api/entries/get?id="+id)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["error"])
	resp, body = postJSON(t, srv.URL+"/api/entries/delete", map[string]string{"id": id})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestCreateValidationErrors(t *testing.T) {
	srv := newTestGateway(t, nil)

	resp, body := postJSON(t, srv.URL+"/api/entries/create", map[string]string{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "empty_entry", body["error"])

	resp, body = postJSON(t, srv.URL+"/api/entries/create", map[string]string{"text": "x", "time": "25h"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_time_format", body["error"])
}

func TestUpdateValidationErrors(t *testing.T) {
	srv := newTestGateway(t, nil)

	resp, body := postJSON(t, srv.URL+"/api/entries/update", map[string]string{"date": "2024-01-01"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing_id", body["error"])

	_, created := postJSON(t, srv.URL+"/api/entries/create", map[string]string{"text": "x"})
	id := created["id"].(string)

	resp, body = postJSON(t, srv.URL+"/api/entries/update", map[string]string{"id": id, "date": "bad"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_date_format", body["error"])

	resp, body = postJSON(t, srv.URL+"/api/entries/update", map[string]string{"id": id, "text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "entry_cannot_be_empty", body["error"])
}

func TestListPreviews(t *testing.T) {
	srv := newTestGateway(t, nil)

	long := strings.Repeat("a", 120)
	_, created := postJSON(t, srv.URL+"/api/entries/create", map[string]string{
		"text": long, "date": "2024-01-02", "time": "10:00",
	})
	require.Equal(t, true, created["ok"])
	postJSON(t, srv.URL+"/api/entries/create", map[string]string{
		"encouragement": "keep going", "date": "2024-01-01", "time": "10:00",
	})

	resp, body := getJSON(t, srv.URL+"/api/entries/list")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["count"])

	items := body["items"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "2024-01-02", first["date"])
	assert.Len(t, first["preview"], 80)

	second := items[1].(map[string]interface{})
	assert.Equal(t, "keep going", second["preview"])
}

func TestProxyPassthrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/count-words", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"count": len(strings.Fields(req["text"]))})
	}))
	defer backend.Close()

	srv := newTestGateway(t, func(cfg *config.Config) {
		cfg.WordcountURL = backend.URL
	})

	resp, body := postJSON(t, srv.URL+"/api/a/wordcount", map[string]string{"text": "three small words"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), body["count"])
}

func TestProxyDownstreamUnavailable(t *testing.T) {
	target := "http://127.0.0.1:1"
	srv := newTestGateway(t, func(cfg *config.Config) {
		cfg.CountURL = target
	})

	resp, body := getJSON(t, srv.URL+"/api/c/count")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "service_unavailable", body["error"])
	assert.Contains(t, body["target"], target)
}

func TestExportNoContentRewrite(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	srv := newTestGateway(t, func(cfg *config.Config) {
		cfg.ExportURL = backend.URL
	})

	resp, body := postJSON(t, srv.URL+"/api/d/export-csv", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "no entries", body["note"])
}

func TestExportProxyPassthrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"format": "csv", "path": "exports/entries_2024-01-01_abcd1234.csv"})
	}))
	defer backend.Close()

	srv := newTestGateway(t, func(cfg *config.Config) {
		cfg.ExportURL = backend.URL
	})

	resp, body := postJSON(t, srv.URL+"/api/d/export-csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "csv", body["format"])
}

func TestServeExportFile(t *testing.T) {
	exportDir := t.TempDir()
	srv := newTestGateway(t, func(cfg *config.Config) {
		cfg.ExportDir = exportDir
	})

	artifact := filepath.Join(exportDir, "entries_2024-01-01_abcd1234.csv")
	require.NoError(t, os.WriteFile(artifact, []byte("id,date,text\n"), 0o644))

	resp, err := http.Get(srv.URL + "/exports/entries_2024-01-01_abcd1234.csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/exports/does-not-exist.csv")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
