// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
//
// # Strictness
//
// Unlike a clamping parser, [Parse] never silently repairs bad input: a
// non-integer or non-positive "page" or "limit" is reported back to the
// caller so it can be rejected with a 400.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// ParamPage is the query parameter carrying the page number.
	ParamPage = "page"
	// ParamLimit is the query parameter carrying the page size.
	ParamLimit = "limit"
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of items to skip, (Page-1)*Limit.
//
// Page is not compared against the total: a page past the end yields an
// offset past the end, and the store returns an empty slice. A product too
// large for an int saturates at [math.MaxInt], which is past the end of any
// collection.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Invalid returns the names of the parameters that violate page >= 1 and
// limit >= 1. An empty result means the params are usable.
func (p Params) Invalid() []string {
	var invalid []string
	if p.Page < 1 {
		invalid = append(invalid, ParamPage)
	}
	if p.Limit < 1 {
		invalid = append(invalid, ParamLimit)
	}
	return invalid
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(total/limit), and 0 when there are no items. The page is
// echoed verbatim, even when it is greater than TotalPages.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = total / limit
		if total%limit != 0 {
			totalPages++
		}
	}

	return Meta{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// Parse reads "page" and "limit" from a query string.
//
// Missing parameters fall back to [DefaultPage] and [DefaultLimit]. The second
// return value lists every parameter that was present but malformed
// (not an integer, or lower than 1).
func Parse(query url.Values) (Params, []string) {
	var invalid []string

	page, ok := parseIntParam(query, ParamPage, DefaultPage)
	if !ok {
		invalid = append(invalid, ParamPage)
	}

	limit, ok := parseIntParam(query, ParamLimit, DefaultLimit)
	if !ok {
		invalid = append(invalid, ParamLimit)
	}

	return Params{Page: page, Limit: limit}, invalid
}

// parseIntParam parses a single positive integer query parameter with a fallback default.
func parseIntParam(query url.Values, key string, defaultVal int) (int, bool) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return defaultVal, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}
