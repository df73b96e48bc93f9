// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package diary implements the owner-scoped diary entry resource.

Every read and write is filtered by both the entry ID and the owning user's
ID: an entry is never visible or mutable to a non-owning requester, and a
miss is indistinguishable from somebody else's entry.

# Architecture

  - Entry: The domain entity; tags are always a normalized []string.
  - Service: Validation-adjacent orchestration and error translation.
  - Repository: Postgres-backed persistence, injected at construction.
*/
package diary

import "time"

// Entry represents a single diary entry.
//
// UserID is the ownership scope and is never serialized; clients only ever
// see their own entries, so echoing the owner is redundant.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

// Field names for validation details in the diary domain.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldMood    = "mood"
	FieldTags    = "tags"
)

// # User-Facing Messages

const (
	msgNotFound     = "日記が見つかりません"
	msgListFailed   = "日記の取得に失敗しました"
	msgCreateFailed = "日記の作成に失敗しました"
	msgUpdateFailed = "日記の更新に失敗しました"
	msgDeleteFailed = "日記の削除に失敗しました"
	msgDeleted      = "日記を削除しました"
)
