package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/daybook-labs/daybook/internal/api/respond"
)

// ExportsHandler serves previously generated export artifacts from a
// fixed directory.
type ExportsHandler struct {
	dir string
}

// NewExportsHandler creates a handler rooted at dir.
func NewExportsHandler(dir string) *ExportsHandler {
	return &ExportsHandler{dir: dir}
}

// ServeFile handles GET /exports/{filename}. Only plain file names
// inside the export directory are served; anything that would escape
// it is answered with not_found rather than the out-of-sandbox file.
func (h *ExportsHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	if name == "" || strings.Contains(name, "..") || name != filepath.Base(name) {
		respond.WriteCode(w, http.StatusNotFound, "not_found")
		return
	}

	path := filepath.Join(h.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		respond.WriteCode(w, http.StatusNotFound, "not_found")
		return
	}
	http.ServeFile(w, r, path)
}
