// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/nikki/pkg/pagination"
)

/*
TestParams_Offset verifies the page-to-offset conversion.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		offset int
	}{
		{"first_page", 1, 9, 0},
		{"second_page", 2, 9, 9},
		{"third_page", 3, 5, 10},
		{"zero_page_clamps", 0, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page, Limit: tt.limit}
			assert.Equal(t, tt.offset, p.Offset())
		})
	}
}

/*
TestNewMeta verifies page-count ceiling math and the hasMore flag.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int
		wantTotal  int
		wantMore   bool
	}{
		// 12 entries, 9 per page: two pages, first has more.
		{"first_of_two", 1, 9, 12, 2, true},
		{"last_of_two", 2, 9, 12, 2, false},
		{"exact_multiple", 2, 9, 18, 2, false},
		// 10 entries, page 2 of 9: one entry left, nothing after.
		{"one_left_on_last_page", 2, 9, 10, 2, false},
		{"single_partial_page", 1, 9, 4, 1, false},
		{"empty", 1, 9, 0, 0, false},
		{"page_past_end", 5, 9, 12, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(pagination.Params{Page: tt.page, Limit: tt.limit}, tt.totalItems)

			assert.Equal(t, tt.page, meta.Current)
			assert.Equal(t, tt.wantTotal, meta.Total)
			assert.Equal(t, tt.wantMore, meta.HasMore)
		})
	}
}

/*
TestFromRequest verifies query parsing and clamping of page/limit.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 9},
		{"explicit", "?page=3&limit=20", 3, 20},
		{"negative_page", "?page=-1", 1, 9},
		{"zero_limit", "?limit=0", 1, 9},
		{"over_max_limit", "?limit=1000", 1, 9},
		{"non_numeric", "?page=abc&limit=xyz", 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/diaries"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}
