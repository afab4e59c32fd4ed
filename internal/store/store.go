// Package store owns the on-disk representation of journal entries.
package store

import (
	"context"

	"github.com/daybook-labs/daybook/internal/model"
)

// EntryStore is the persistence contract for journal entries. The
// file-backed implementation is the only one today; the interface
// keeps the directory scan swappable for an indexed store later.
type EntryStore interface {
	// Create validates the request, assigns a fresh id and persists
	// exactly one record.
	Create(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error)

	// Get returns the entry for id, or model.ErrNotFound.
	Get(ctx context.Context, id string) (*model.Entry, error)

	// Update applies a partial update and persists the full record.
	// The stored record is untouched when any validation fails.
	Update(ctx context.Context, id string, req model.UpdateEntryRequest) (*model.Entry, error)

	// Delete permanently removes the record for id.
	Delete(ctx context.Context, id string) error

	// List scans all records and returns them newest first by
	// (date, time). The result is a point-in-time snapshot.
	List(ctx context.Context) ([]*model.Entry, error)

	// Path reports where the record for id lives on disk.
	Path(id string) string
}
