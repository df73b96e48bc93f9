// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tags normalizes user-supplied diary tag lists.
//
// # Usage
//
// Tags arrive from the frontend as free-form strings, often mixing full-width
// and half-width Japanese input ("ＧＯ" vs "GO", ideographic spaces). This
// package folds them into one canonical form so that the same tag typed two
// ways is stored and matched as a single value.
package tags

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxTags is the maximum number of tags accepted per entry.
	MaxTags = 10
	// MaxTagLength is the maximum rune count of a single tag.
	MaxTagLength = 30
)

// Normalize canonicalizes a tag list.
//
// # Transformation Pipeline
//
// 1. Applies Unicode NFKC (folds full-width/half-width variants, compatibility forms).
// 2. Trims surrounding whitespace, including ideographic spaces.
// 3. Drops entries that end up empty.
// 4. Removes duplicates while preserving first-seen order.
//
// The result is the canonical representation used at every service and
// storage boundary. A nil or empty input yields an empty (non-nil) slice so
// the JSON encoding is always an array, never null.
func Normalize(raw []string) []string {
	result := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, tag := range raw {
		clean := strings.TrimSpace(norm.NFKC.String(tag))
		if clean == "" {
			continue
		}
		if _, duplicate := seen[clean]; duplicate {
			continue
		}
		seen[clean] = struct{}{}
		result = append(result, clean)
	}

	return result
}
