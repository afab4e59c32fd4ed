package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-labs/daybook/internal/model"
)

var (
	dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`) // YYYY-MM-DD
	timeRx = regexp.MustCompile(`^\d{2}:\d{2}$`)       // HH:MM (24h)
)

// FileStore keeps one JSON file per entry under dir, named <id>.json.
// Writes land through a temp sibling and an atomic rename, so readers
// never observe a half-written record. Update is read-modify-write
// without locking: concurrent updates to the same id are
// last-writer-wins, an accepted limitation at this scale.
type FileStore struct {
	dir string
}

// NewFileStore ensures dir exists and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create entries dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path reports the record file for id.
func (s *FileStore) Path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Create validates the request and persists a new record.
func (s *FileStore) Create(_ context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	text := strings.TrimSpace(req.Text)
	encouragement := strings.TrimSpace(req.Encouragement)
	if text == "" && encouragement == "" {
		return nil, model.ErrEmptyEntry
	}

	now := time.Now().UTC()
	date := strings.TrimSpace(req.Date)
	if !dateRx.MatchString(date) {
		// A missing or malformed date falls back to today, never an error.
		date = now.Format("2006-01-02")
	}
	clock := strings.TrimSpace(req.Time)
	if clock != "" && !timeRx.MatchString(clock) {
		return nil, model.ErrInvalidTimeFormat
	}
	if clock == "" {
		clock = now.Format("15:04")
	}

	e := &model.Entry{
		ID:            newEntryID(),
		Date:          date,
		Time:          clock,
		Text:          text,
		Encouragement: encouragement,
	}
	if err := s.write(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get reads the record for id. Missing and unreadable records are both
// reported as not found.
func (s *FileStore) Get(_ context.Context, id string) (*model.Entry, error) {
	if id == "" {
		return nil, model.ErrNotFound
	}
	raw, err := os.ReadFile(s.Path(id))
	if err != nil {
		return nil, model.ErrNotFound
	}
	var e model.Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, model.ErrNotFound
	}
	return &e, nil
}

// Update applies the partial update and replaces the stored record.
// All validation happens before the write, so a failed update leaves
// the record exactly as it was.
func (s *FileStore) Update(ctx context.Context, id string, req model.UpdateEntryRequest) (*model.Entry, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		e.Text = strings.TrimSpace(*req.Text) // blank clears the field
	}
	if req.Encouragement != nil {
		e.Encouragement = strings.TrimSpace(*req.Encouragement)
	}
	if req.Date != nil {
		d := strings.TrimSpace(*req.Date)
		if !dateRx.MatchString(d) {
			return nil, model.ErrInvalidDateFormat
		}
		e.Date = d
	}
	if req.Time != nil {
		tm := strings.TrimSpace(*req.Time)
		if !timeRx.MatchString(tm) {
			return nil, model.ErrInvalidTimeFormat
		}
		e.Time = tm
	}

	if e.Text == "" && e.Encouragement == "" {
		return nil, model.ErrEntryCannotBeEmpty
	}
	if err := s.write(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete permanently removes the record for id.
func (s *FileStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return model.ErrNotFound
	}
	path := s.Path(id)
	if _, err := os.Stat(path); err != nil {
		return model.ErrNotFound
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDeleteFailed, err)
	}
	return nil
}

// List scans the entries directory and returns all readable records
// newest first. Entries created or deleted mid-scan may or may not
// appear; there is no snapshot guarantee.
func (s *FileStore) List(_ context.Context) ([]*model.Entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan entries dir: %w", err)
	}
	var out []*model.Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, de.Name()))
		if err != nil {
			// the record may have been deleted mid-scan
			continue
		}
		var e model.Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) > sortKey(out[j])
	})
	return out, nil
}

// sortKey orders entries by (date, time) compared as strings; records
// missing either field sink to the bottom via the minimal sentinels.
func sortKey(e *model.Entry) string {
	d, tm := e.Date, e.Time
	if d == "" {
		d = "0000-00-00"
	}
	if tm == "" {
		tm = "00:00"
	}
	return d + " " + tm
}

// write lands the full record via a temp sibling and an atomic rename.
func (s *FileStore) write(e *model.Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", e.ID, err)
	}
	path := s.Path(e.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write entry %s: %w", e.ID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace entry %s: %w", e.ID, err)
	}
	return nil
}

// newEntryID returns a fresh 32-char hex token.
func newEntryID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
