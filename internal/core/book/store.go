// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "github.com/arokeji/library-api/internal/platform/collection"

// Store persists books. Reads populate [Book.Author].
type Store interface {
	collection.Store[Book, string]
	AuthorDirectory
	ReferenceIndex
}
