package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveExport invokes the handler directly with an injected filename,
// bypassing the router's own path cleaning, to exercise the sandbox
// check itself.
func serveExport(t *testing.T, dir, filename string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewExportsHandler(dir)
	req := httptest.NewRequest(http.MethodGet, "/exports/x", nil)
	req = mux.SetURLVars(req, map[string]string{"filename": filename})
	w := httptest.NewRecorder()
	h.ServeFile(w, req)
	return w
}

func TestExportsSandboxRejectsTraversal(t *testing.T) {
	dir := t.TempDir()

	// a secret outside the export dir must never be reachable
	outside := filepath.Join(dir, "..", "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("top secret"), 0o644))

	for _, name := range []string{
		"../secret.txt",
		"..%2Fsecret.txt",
		"..",
		"sub/secret.txt",
		"",
	} {
		w := serveExport(t, dir, name)
		assert.Equal(t, http.StatusNotFound, w.Code, "filename %q escaped the sandbox", name)
	}
}

func TestExportsSandboxServesPlainNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entries_2024-06-01_deadbeef.csv"), []byte("id,date,text\n"), 0o644))

	w := serveExport(t, dir, "entries_2024-06-01_deadbeef.csv")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "id,date,text")
}
