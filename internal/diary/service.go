// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package diary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/nikki/internal/platform/apperr"
	"github.com/taibuivan/nikki/internal/platform/dberr"
	"github.com/taibuivan/nikki/pkg/pagination"
	"github.com/taibuivan/nikki/pkg/tags"
	"github.com/taibuivan/nikki/pkg/uuidv7"
)

// Service implements the diary entry use cases.
//
// Ownership scoping is not optional: every method takes the caller's user ID
// as its first domain argument and passes it down to the repository, which
// applies it in the SQL predicate.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new diary [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Listing

// ListResult is the response body of the list endpoint.
type ListResult struct {
	Diaries    []*Entry        `json:"diaries"`
	Pagination pagination.Meta `json:"pagination"`
}

// List returns one page of the owner's entries, newest created first,
// together with the pagination block.
//
// A page past the end of the data is not an error; it returns an empty
// slice with the correct totals.
func (service *Service) List(ctx context.Context, ownerID string, params pagination.Params) (*ListResult, error) {
	entries, err := service.repo.ListByOwner(ctx, ownerID, params.Limit, params.Offset())
	if err != nil {
		return nil, apperr.Internal(msgListFailed, err)
	}

	total, err := service.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(msgListFailed, err)
	}

	return &ListResult{
		Diaries:    entries,
		Pagination: pagination.NewMeta(params, total),
	}, nil
}

// # Mutations

// EntryInput carries the client-controlled fields of an entry.
//
// It is used for both create and update; updates are full-field replaces,
// so an omitted mood or tag list resets the stored value to its empty form.
type EntryInput struct {
	Title   string
	Content string
	Mood    string
	Tags    []string
}

// Create persists a new entry attributed to ownerID.
//
// Input validation happens in the handler before this point; the service
// only canonicalizes tags and assigns identity.
func (service *Service) Create(ctx context.Context, ownerID string, input EntryInput) (*Entry, error) {
	entry := &Entry{
		ID:      uuidv7.New(),
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
		Tags:    tags.Normalize(input.Tags),
	}

	if err := service.repo.Create(ctx, entry); err != nil {
		return nil, apperr.Internal(msgCreateFailed, err)
	}

	return entry, nil
}

// Get returns the entry only if it exists and is owned by ownerID.
//
// "Does not exist" and "exists but belongs to someone else" produce the
// same 404; do not add detail here.
func (service *Service) Get(ctx context.Context, ownerID, entryID string) (*Entry, error) {
	entry, err := service.repo.FindByID(ctx, ownerID, entryID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(msgNotFound)
		}
		return nil, apperr.Internal(msgListFailed, err)
	}

	return entry, nil
}

// Update replaces all client-controlled fields of an owned entry and
// returns the updated state.
func (service *Service) Update(ctx context.Context, ownerID, entryID string, input EntryInput) (*Entry, error) {
	entry := &Entry{
		ID:      entryID,
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
		Tags:    tags.Normalize(input.Tags),
	}

	if err := service.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(msgNotFound)
		}
		return nil, apperr.Internal(msgUpdateFailed, err)
	}

	// Re-read for the authoritative row, including created_at.
	updated, err := service.repo.FindByID(ctx, ownerID, entryID)
	if err != nil {
		return nil, apperr.Internal(msgUpdateFailed, err)
	}

	return updated, nil
}

// Delete removes an owned entry. There is no soft-delete and no cascade
// beyond the single row.
func (service *Service) Delete(ctx context.Context, ownerID, entryID string) error {
	if err := service.repo.Delete(ctx, ownerID, entryID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(msgNotFound)
		}
		return apperr.Internal(msgDeleteFailed, err)
	}

	return nil
}
