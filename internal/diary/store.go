// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package diary

import "context"

// Repository defines the data access contract for diary entries.
//
// Every method that targets a single entry takes the owner's ID alongside
// the entry ID and must apply both in its predicate. Implementations signal
// "no such entry for this owner" with [dberr.ErrNotFound]; the service maps
// it to the client-facing 404 without distinguishing why the row was absent.
type Repository interface {
	// ListByOwner returns a page of the owner's entries, newest created first.
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*Entry, error)

	// CountByOwner returns the owner's total entry count, for pagination.
	CountByOwner(ctx context.Context, ownerID string) (int, error)

	// Create persists a new entry attributed to entry.UserID.
	Create(ctx context.Context, entry *Entry) error

	// FindByID returns the entry only if it exists and belongs to ownerID.
	FindByID(ctx context.Context, ownerID, entryID string) (*Entry, error)

	// Update replaces the mutable fields of an owned entry.
	Update(ctx context.Context, entry *Entry) error

	// Delete removes an owned entry.
	Delete(ctx context.Context, ownerID, entryID string) error
}
