// Package export implements the CSV export helper service: snapshots
// of all stored entries landed as artifacts in the export directory.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-labs/daybook/internal/model"
)

// WriteCSV lands a snapshot of entries as a CSV artifact in dir and
// returns its path. The artifact becomes visible atomically via a
// temp sibling and rename, like entry records do.
func WriteCSV(dir string, entries []*model.Entry) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("entries_%s_%s.csv",
		time.Now().UTC().Format("2006-01-02"), shortSuffix())
	path := filepath.Join(dir, name)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"id", "date", "text"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.ID, e.Date, flatten(e.Text)}); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("replace export: %w", err)
	}
	return path, nil
}

// flatten folds newlines into spaces so each entry stays on one row.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// shortSuffix returns an 8-char hex token for export file names.
func shortSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
