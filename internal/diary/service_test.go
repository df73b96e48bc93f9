// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package diary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nikki/internal/platform/apperr"
	"github.com/taibuivan/nikki/internal/platform/dberr"
	"github.com/taibuivan/nikki/pkg/pagination"
	"github.com/taibuivan/nikki/pkg/uuidv7"
)

// # Test Double

// memoryRepository is an in-memory Repository that enforces ownership
// predicates the same way the SQL implementation does.
type memoryRepository struct {
	entries map[string]*Entry
	clock   time.Time
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		entries: make(map[string]*Entry),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so created_at ordering is deterministic.
func (r *memoryRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *memoryRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*Entry, error) {
	owned := make([]*Entry, 0)
	for _, entry := range r.entries {
		if entry.UserID == ownerID {
			owned = append(owned, entry)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})

	if offset >= len(owned) {
		return []*Entry{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (r *memoryRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, entry := range r.entries {
		if entry.UserID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepository) Create(ctx context.Context, entry *Entry) error {
	now := r.tick()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	stored := *entry
	r.entries[entry.ID] = &stored
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, ownerID, entryID string) (*Entry, error) {
	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != ownerID {
		return nil, dberr.ErrNotFound
	}
	found := *entry
	return &found, nil
}

func (r *memoryRepository) Update(ctx context.Context, entry *Entry) error {
	existing, ok := r.entries[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return dberr.ErrNotFound
	}
	existing.Title = entry.Title
	existing.Content = entry.Content
	existing.Mood = entry.Mood
	existing.Tags = entry.Tags
	existing.UpdatedAt = r.tick()
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, ownerID, entryID string) error {
	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != ownerID {
		return dberr.ErrNotFound
	}
	delete(r.entries, entryID)
	return nil
}

func newTestService(t *testing.T) (*Service, *memoryRepository) {
	t.Helper()
	repo := newMemoryRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

// # Creation

/*
TestService_Create verifies identity assignment and tag canonicalization.
*/
func TestService_Create(t *testing.T) {
	service, _ := newTestService(t)
	ownerID := uuidv7.New()

	entry, err := service.Create(context.Background(), ownerID, EntryInput{
		Title:   "今日の日記",
		Content: "散歩した。",
		Mood:    "happy",
		Tags:    []string{" 散歩 ", "散歩", "天気"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, ownerID, entry.UserID)
	assert.Equal(t, "今日の日記", entry.Title)
	// Tags are trimmed and deduplicated on the way in.
	assert.Equal(t, []string{"散歩", "天気"}, entry.Tags)
	assert.False(t, entry.CreatedAt.IsZero())
}

/*
TestService_Create_EmptyOptionalFields verifies mood and tags default cleanly.
*/
func TestService_Create_EmptyOptionalFields(t *testing.T) {
	service, _ := newTestService(t)

	entry, err := service.Create(context.Background(), uuidv7.New(), EntryInput{
		Title:   "タイトル",
		Content: "本文",
	})
	require.NoError(t, err)

	assert.Equal(t, "", entry.Mood)
	// Tags serialize as [], never null.
	assert.NotNil(t, entry.Tags)
	assert.Empty(t, entry.Tags)
}

// # Ownership Isolation

/*
TestService_OwnershipIsolation verifies that another user's entry is
indistinguishable from a missing one across get, update, and delete.
*/
func TestService_OwnershipIsolation(t *testing.T) {
	service, _ := newTestService(t)
	ownerID := uuidv7.New()
	strangerID := uuidv7.New()

	entry, err := service.Create(context.Background(), ownerID, EntryInput{Title: "秘密", Content: "内緒の話"})
	require.NoError(t, err)

	assertNotFound := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
		assert.Equal(t, "日記が見つかりません", ae.Message)
	}

	t.Run("get", func(t *testing.T) {
		_, err := service.Get(context.Background(), strangerID, entry.ID)
		assertNotFound(t, err)
	})

	t.Run("update", func(t *testing.T) {
		_, err := service.Update(context.Background(), strangerID, entry.ID, EntryInput{Title: "乗っ取り", Content: "x"})
		assertNotFound(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		assertNotFound(t, service.Delete(context.Background(), strangerID, entry.ID))
	})

	t.Run("missing_id_same_error", func(t *testing.T) {
		_, err := service.Get(context.Background(), ownerID, uuidv7.New())
		assertNotFound(t, err)
	})

	// The owner still sees the untouched entry.
	got, err := service.Get(context.Background(), ownerID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "秘密", got.Title)
}

// # Listing & Pagination

/*
TestService_List verifies newest-first ordering, page math, and owner scoping.
*/
func TestService_List(t *testing.T) {
	service, _ := newTestService(t)
	ownerID := uuidv7.New()
	strangerID := uuidv7.New()

	// 12 owned entries plus noise from another user.
	for i := 1; i <= 12; i++ {
		_, err := service.Create(context.Background(), ownerID, EntryInput{
			Title:   fmt.Sprintf("entry-%02d", i),
			Content: "本文",
		})
		require.NoError(t, err)
	}
	_, err := service.Create(context.Background(), strangerID, EntryInput{Title: "other", Content: "x"})
	require.NoError(t, err)

	t.Run("first_page", func(t *testing.T) {
		result, err := service.List(context.Background(), ownerID, pagination.Params{Page: 1, Limit: 9})
		require.NoError(t, err)

		require.Len(t, result.Diaries, 9)
		// Newest created comes first.
		assert.Equal(t, "entry-12", result.Diaries[0].Title)
		assert.Equal(t, "entry-04", result.Diaries[8].Title)

		assert.Equal(t, 1, result.Pagination.Current)
		assert.Equal(t, 2, result.Pagination.Total)
		assert.True(t, result.Pagination.HasMore)
	})

	t.Run("last_page", func(t *testing.T) {
		result, err := service.List(context.Background(), ownerID, pagination.Params{Page: 2, Limit: 9})
		require.NoError(t, err)

		require.Len(t, result.Diaries, 3)
		assert.Equal(t, "entry-03", result.Diaries[0].Title)
		assert.Equal(t, "entry-01", result.Diaries[2].Title)

		assert.Equal(t, 2, result.Pagination.Current)
		assert.Equal(t, 2, result.Pagination.Total)
		assert.False(t, result.Pagination.HasMore)
	})

	t.Run("page_past_end", func(t *testing.T) {
		result, err := service.List(context.Background(), ownerID, pagination.Params{Page: 9, Limit: 9})
		require.NoError(t, err)

		assert.Empty(t, result.Diaries)
		assert.Equal(t, 2, result.Pagination.Total)
		assert.False(t, result.Pagination.HasMore)
	})

	t.Run("empty_for_new_user", func(t *testing.T) {
		result, err := service.List(context.Background(), uuidv7.New(), pagination.Params{Page: 1, Limit: 9})
		require.NoError(t, err)

		assert.Empty(t, result.Diaries)
		assert.Equal(t, 0, result.Pagination.Total)
		assert.False(t, result.Pagination.HasMore)
	})
}

// # Updates

/*
TestService_Update verifies the full-field replace semantics.
*/
func TestService_Update(t *testing.T) {
	service, _ := newTestService(t)
	ownerID := uuidv7.New()

	created, err := service.Create(context.Background(), ownerID, EntryInput{
		Title:   "旧タイトル",
		Content: "旧本文",
		Mood:    "sad",
		Tags:    []string{"旧"},
	})
	require.NoError(t, err)

	// Omitting mood and tags resets them to their empty forms.
	updated, err := service.Update(context.Background(), ownerID, created.ID, EntryInput{
		Title:   "新タイトル",
		Content: "新本文",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "新タイトル", updated.Title)
	assert.Equal(t, "新本文", updated.Content)
	assert.Equal(t, "", updated.Mood)
	assert.Empty(t, updated.Tags)
	// created_at survives the replace; updated_at moves forward.
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

/*
TestService_Delete verifies removal and subsequent 404.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newTestService(t)
	ownerID := uuidv7.New()

	created, err := service.Create(context.Background(), ownerID, EntryInput{Title: "消す", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), ownerID, created.ID))

	_, err = service.Get(context.Background(), ownerID, created.ID)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)

	// Deleting again yields the same 404.
	err = service.Delete(context.Background(), ownerID, created.ID)
	require.Error(t, err)
}
