// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold compares human-entered names without regard to case or accents.
//
// # Usage
//
// Prefix searches ("an" finds "Ana" and "ANDRES") must behave the same in
// every storage adapter. Database adapters push the match down to SQL; this
// package gives in-process adapters the identical semantics.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key converts s into its comparison form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: á → a + combining acute).
// 2. Removes combining marks (accents).
// 3. Applies Unicode case folding.
// 4. Trims surrounding whitespace.
func Key(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.TrimSpace(cases.Fold().String(stripped))
}

// HasPrefix reports whether s begins with prefix, ignoring case and accents.
// An empty prefix matches everything.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(Key(s), Key(prefix))
}
