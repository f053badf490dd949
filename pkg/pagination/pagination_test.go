// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arokeji/library-api/pkg/pagination"
)

/*
TestNewMeta_TotalPages checks totalPages == ceil(totalItems/limit) across a grid.
*/
func TestNewMeta_TotalPages(t *testing.T) {
	for limit := 1; limit <= 12; limit++ {
		for total := 0; total <= 60; total++ {
			meta := pagination.NewMeta(1, limit, total)

			expected := total / limit
			if total%limit != 0 {
				expected++
			}

			assert.Equal(t, expected, meta.TotalPages, "limit=%d total=%d", limit, total)
			assert.Equal(t, total, meta.TotalItems)
			if total > 0 {
				assert.GreaterOrEqual(t, meta.TotalPages*limit, total)
			}
		}
	}
}

/*
TestNewMeta_Scenario covers page 2 of 25 items with 10 per page.
*/
func TestNewMeta_Scenario(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 25)
	assert.Equal(t, pagination.Meta{TotalItems: 25, TotalPages: 3, CurrentPage: 2}, meta)
}

/*
TestNewMeta_PageNotClamped verifies the current page is echoed even past the end.
*/
func TestNewMeta_PageNotClamped(t *testing.T) {
	meta := pagination.NewMeta(9, 10, 25)
	assert.Equal(t, 9, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)

	empty := pagination.NewMeta(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, 1, empty.CurrentPage)
}

/*
TestParams_Offset checks skip = (page-1)*limit.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 80, pagination.Params{Page: 9, Limit: 10}.Offset())
}

/*
TestParams_Offset_Saturates checks that huge page descriptors land past the end
instead of wrapping around to a negative offset.
*/
func TestParams_Offset_Saturates(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"max_limit_page_three", pagination.Params{Page: 3, Limit: math.MaxInt}, math.MaxInt},
		{"max_page", pagination.Params{Page: math.MaxInt, Limit: 10}, math.MaxInt},
		{"max_limit_first_page", pagination.Params{Page: 1, Limit: math.MaxInt}, 0},
		{"exact_fit", pagination.Params{Page: 2, Limit: math.MaxInt}, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := tt.params.Offset()
			assert.Equal(t, tt.want, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}

/*
TestNewMeta_HugeLimit checks the page count does not overflow.
*/
func TestNewMeta_HugeLimit(t *testing.T) {
	meta := pagination.NewMeta(3, math.MaxInt, 25)
	assert.Equal(t, pagination.Meta{TotalItems: 25, TotalPages: 1, CurrentPage: 3}, meta)
}

/*
TestParse tests default values and strict rejection of malformed parameters.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		params  pagination.Params
		invalid []string
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 10}, nil},
		{"explicit", "page=3&limit=25", pagination.Params{Page: 3, Limit: 25}, nil},
		{"zero_page", "page=0&limit=5", pagination.Params{Page: 0, Limit: 5}, []string{"page"}},
		{"negative_limit", "page=2&limit=-1", pagination.Params{Page: 2, Limit: 0}, []string{"limit"}},
		{"non_integer", "page=1.5&limit=abc", pagination.Params{}, []string{"page", "limit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			params, invalid := pagination.Parse(query)

			assert.Equal(t, tt.invalid, invalid)
			if len(tt.invalid) == 0 {
				assert.Equal(t, tt.params, params)
				assert.Empty(t, params.Invalid())
			} else {
				assert.NotEmpty(t, params.Invalid())
			}
		})
	}
}
