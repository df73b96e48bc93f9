// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package diary

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/nikki/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
//
// Tags live in a text[] column, which pgx scans directly into []string; no
// delimiter encoding happens anywhere.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL diary repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListByOwner returns one page of the owner's entries, newest created first.
//
// The secondary id sort makes ordering deterministic when entries share a
// created_at timestamp; UUIDv7 ids preserve creation order.
func (repository *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*Entry, error) {
	const query = `
		SELECT id, user_id, title, content, mood, tags, created_at, updated_at
		FROM diaries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_diary_list")
	}
	defer rows.Close()

	entries := make([]*Entry, 0, limit)
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Title,
			&entry.Content,
			&entry.Mood,
			&entry.Tags,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "postgres_diary_scan")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "postgres_diary_rows")
	}

	return entries, nil
}

// CountByOwner returns the owner's total entry count.
func (repository *PostgresRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	const query = `SELECT COUNT(*) FROM diaries WHERE user_id = $1`

	var total int
	if err := repository.pool.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "postgres_diary_count")
	}

	return total, nil
}

// Create persists a new entry row.
func (repository *PostgresRepository) Create(ctx context.Context, entry *Entry) error {
	const query = `
		INSERT INTO diaries (id, user_id, title, content, mood, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.Tags,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return dberr.Wrap(err, "postgres_diary_create")
}

// FindByID returns the entry only if it exists AND belongs to ownerID.
func (repository *PostgresRepository) FindByID(ctx context.Context, ownerID, entryID string) (*Entry, error) {
	const query = `
		SELECT id, user_id, title, content, mood, tags, created_at, updated_at
		FROM diaries
		WHERE id = $1 AND user_id = $2`

	entry := &Entry{}
	err := repository.pool.QueryRow(ctx, query, entryID, ownerID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.Mood,
		&entry.Tags,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_diary_find")
	}

	return entry, nil
}

// Update replaces the mutable fields of an owned entry.
//
// The ownership filter sits in the UPDATE predicate itself, so the check and
// the write are one atomic statement; zero rows affected means the entry is
// missing or not owned, which callers see as [dberr.ErrNotFound].
func (repository *PostgresRepository) Update(ctx context.Context, entry *Entry) error {
	const query = `
		UPDATE diaries
		SET title = $3, content = $4, mood = $5, tags = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2`

	entry.UpdatedAt = time.Now()

	commandTag, err := repository.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.Tags,
		entry.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "postgres_diary_update")
	}

	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// Delete removes an owned entry. Deletion is unconditional once ownership
// matches; there is no soft-delete.
func (repository *PostgresRepository) Delete(ctx context.Context, ownerID, entryID string) error {
	const query = `DELETE FROM diaries WHERE id = $1 AND user_id = $2`

	commandTag, err := repository.pool.Exec(ctx, query, entryID, ownerID)
	if err != nil {
		return dberr.Wrap(err, "postgres_diary_delete")
	}

	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
